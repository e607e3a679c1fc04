package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacogips/billingkit/internal/deps"
)

func TestAdd(t *testing.T) {
	runner := &fakeRunner{}

	result, err := Add(context.Background(), AddOptions{
		Component:    "pricing-table-one",
		ComponentURL: "https://billingsdk.com/r",
		Manager:      deps.PNPM,
		Runner:       runner,
	})
	require.NoError(t, err)

	want := []string{"pnpm", "dlx", "shadcn@latest", "add", "https://billingsdk.com/r/pricing-table-one.json"}
	assert.Equal(t, want, result.Command)
	require.Len(t, runner.calls, 1)
	assert.Equal(t, want, runner.calls[0])
}

func TestAddValidation(t *testing.T) {
	tests := []struct {
		name      string
		component string
	}{
		{"missing", ""},
		{"blank", "   "},
		{"path", "../secret"},
		{"url", "https://evil.example.com/x"},
		{"uppercase", "PricingTable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{}
			_, err := Add(context.Background(), AddOptions{
				Component:    tt.component,
				ComponentURL: "https://billingsdk.com/r/",
				Runner:       runner,
			})
			errType, ok := ErrorType(err)
			require.True(t, ok)
			assert.Equal(t, ValidationFailed, errType)
			assert.Empty(t, runner.calls)
		})
	}
}

func TestAddCommandFailure(t *testing.T) {
	runner := &fakeRunner{err: errors.New("exit status 1")}

	_, err := Add(context.Background(), AddOptions{
		Component:    "banner",
		ComponentURL: "https://billingsdk.com/r/",
		Manager:      deps.NPM,
		Runner:       runner,
	})
	require.Error(t, err)

	errType, _ := ErrorType(err)
	assert.Equal(t, InstallFailed, errType)
	var installErr *deps.InstallError
	require.ErrorAs(t, err, &installErr)
	assert.Equal(t, "npx", installErr.Command[0])
}

func TestAddDryRun(t *testing.T) {
	runner := &fakeRunner{}
	result, err := Add(context.Background(), AddOptions{
		Component:    "banner",
		ComponentURL: "https://billingsdk.com/r/",
		Manager:      deps.Bun,
		Runner:       runner,
		DryRun:       true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"bunx", "shadcn@latest", "add", "https://billingsdk.com/r/banner.json"}, result.Command)
	assert.Empty(t, runner.calls)
}
