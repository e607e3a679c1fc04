package detect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacogips/billingkit/internal/template/model"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name   string
		files  map[string]string
		dirs   []string
		want   model.Framework
		wantOK bool
	}{
		{
			name:   "empty directory",
			wantOK: false,
		},
		{
			name:   "nest marker",
			files:  map[string]string{"nest-cli.json": "{}"},
			want:   model.FrameworkNestJS,
			wantOK: true,
		},
		{
			name:   "next config beats express dependency",
			files:  map[string]string{"next.config.mjs": "", "package.json": `{"dependencies":{"express":"^4"}}`},
			want:   model.FrameworkNextJS,
			wantOK: true,
		},
		{
			name:   "next build output directory",
			dirs:   []string{".next"},
			want:   model.FrameworkNextJS,
			wantOK: true,
		},
		{
			name:   "next dependency beats react",
			files:  map[string]string{"package.json": `{"dependencies":{"react":"^18","next":"14"}}`},
			want:   model.FrameworkNextJS,
			wantOK: true,
		},
		{
			name:   "dev dependency",
			files:  map[string]string{"package.json": `{"devDependencies":{"hono":"^4"}}`},
			want:   model.FrameworkHono,
			wantOK: true,
		},
		{
			name:   "fastify before express",
			files:  map[string]string{"package.json": `{"dependencies":{"express":"^4","fastify":"^4"}}`},
			want:   model.FrameworkFastify,
			wantOK: true,
		},
		{
			name:   "react only",
			files:  map[string]string{"package.json": `{"dependencies":{"react":"^18"}}`},
			want:   model.FrameworkReact,
			wantOK: true,
		},
		{
			name:   "unknown dependencies",
			files:  map[string]string{"package.json": `{"dependencies":{"lodash":"^4"}}`},
			wantOK: false,
		},
		{
			name:   "malformed manifest",
			files:  map[string]string{"package.json": `{"dependencies":`},
			wantOK: false,
		},
		{
			name:   "marker name used by a directory is ignored",
			dirs:   []string{"nest-cli.json"},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			for name, content := range tt.files {
				require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(content), 0644))
			}
			for _, dir := range tt.dirs {
				require.NoError(t, os.Mkdir(filepath.Join(root, dir), 0755))
			}

			got, ok := Detect(root)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectMissingRoot(t *testing.T) {
	got, ok := Detect(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.False(t, ok)
	assert.Empty(t, got)
}
