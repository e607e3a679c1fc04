package generator

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecideAction(t *testing.T) {
	tests := []struct {
		name   string
		exists bool
		target string
		want   Action
	}{
		{"new file", false, "lib/stripe.ts", ActionWrite},
		{"new env example", false, ".env.example", ActionWrite},
		{"existing env example", true, ".env.example", ActionMerge},
		{"nested env example", true, "config/.env.example", ActionMerge},
		{"windows separators", true, `config\.env.example`, ActionMerge},
		{"existing .env is not merged", true, ".env", ActionConfirm},
		{"similar name", true, ".env.example.bak", ActionConfirm},
		{"existing source file", true, "app/api/route.ts", ActionConfirm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecideAction(tt.exists, tt.target))
		})
	}
}

func TestResolveTarget(t *testing.T) {
	base := t.TempDir()

	tests := []struct {
		name    string
		target  string
		want    string
		wantErr bool
	}{
		{"simple", "lib/stripe.ts", filepath.Join(base, "lib", "stripe.ts"), false},
		{"dot segment", "./lib/x.ts", filepath.Join(base, "lib", "x.ts"), false},
		{"parenthesized route group", "app/api/(stripe)/route.ts", filepath.Join(base, "app", "api", "(stripe)", "route.ts"), false},
		{"dotted file name", "..env", filepath.Join(base, "..env"), false},
		{"parent traversal", "../outside.ts", "", true},
		{"nested traversal", "lib/../../outside.ts", "", true},
		{"traversal back inside", "lib/../lib/x.ts", "", true},
		{"backslash traversal", `..\outside.ts`, "", true},
		{"absolute", "/etc/passwd", "", true},
		{"empty", "", "", true},
		{"current dir", ".", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveTarget(base, tt.target)
			if tt.wantErr {
				require.Error(t, err)
				var gerr *GeneratorError
				require.ErrorAs(t, err, &gerr)
				assert.Equal(t, GeneratorPathError, gerr.Type)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
