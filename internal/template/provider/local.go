package provider

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/tacogips/billingkit/internal/debug"
	"github.com/tacogips/billingkit/internal/template/bundle"
	"github.com/tacogips/billingkit/internal/template/model"
)

// LocalProvider implements Provider for payload files on a file system.
type LocalProvider struct {
	// FS holds one <identifier>.json per template.
	FS fs.FS
	// Origin describes FS in error messages.
	Origin string
}

// NewLocalProvider creates a provider over the templates bundled with the binary.
func NewLocalProvider() *LocalProvider {
	return &LocalProvider{
		FS:     bundle.FS(),
		Origin: "bundle",
	}
}

// NewLocalProviderWithBase creates a provider over a templates directory.
func NewLocalProviderWithBase(baseDir string) *LocalProvider {
	return &LocalProvider{
		FS:     os.DirFS(baseDir),
		Origin: baseDir,
	}
}

// Name returns the provider name.
func (p *LocalProvider) Name() string {
	return "local"
}

// Fetch reads and validates a template payload.
func (p *LocalProvider) Fetch(ctx context.Context, id string) (*model.Payload, error) {
	name := id + ".json"
	location := p.Origin + ":" + name
	debug.Debug("[local] Reading: %s", location)

	if err := ctx.Err(); err != nil {
		return nil, NewFetchError(p.Name(), location, err)
	}

	if !fs.ValidPath(name) {
		return nil, NewNotFoundError(p.Name(), location)
	}

	data, err := fs.ReadFile(p.FS, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewNotFoundError(p.Name(), location)
		}
		return nil, NewFetchError(p.Name(), location, err)
	}

	return decodePayload(p.Name(), location, data)
}
