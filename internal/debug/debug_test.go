package debug

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetDebug(false)
		SetNoColor(false)
	})
	return &buf
}

func TestSetDebug(t *testing.T) {
	SetDebug(false)
	assert.False(t, IsEnabled())

	SetDebug(true)
	assert.True(t, IsEnabled())

	SetDebug(false)
	assert.False(t, IsEnabled())
}

func TestDebugOutput(t *testing.T) {
	buf := capture(t)
	SetNoColor(true)
	SetDebug(true)

	Debug("test message %s", "arg")

	output := buf.String()
	assert.Contains(t, output, "DEBU")
	assert.Contains(t, output, "test message arg")
	assert.Contains(t, output, "billingkit")
}

func TestDebugDisabled(t *testing.T) {
	buf := capture(t)
	SetDebug(false)

	Debug("this should not appear")
	DebugSection("hidden")
	DebugValue("key", "value")
	DebugJSON("payload", map[string]string{"a": "b"})

	assert.Empty(t, buf.String())
}

func TestDebugSection(t *testing.T) {
	buf := capture(t)
	SetDebug(true)

	DebugSection("Resolve")

	assert.Contains(t, buf.String(), "=== Resolve ===")
}

func TestDebugValue(t *testing.T) {
	buf := capture(t)
	SetNoColor(true)
	SetDebug(true)

	DebugValue("framework", "nextjs")

	assert.Contains(t, buf.String(), "framework=nextjs")
}

func TestDebugJSON(t *testing.T) {
	buf := capture(t)
	SetDebug(true)

	DebugJSON("payload", map[string]int{"files": 2})

	assert.Contains(t, buf.String(), "payload:")
	assert.Contains(t, buf.String(), `"files": 2`)
}
