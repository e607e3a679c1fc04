package provider

import (
	"net/http"
	"time"
)

// ResolverConfig configures NewResolver.
type ResolverConfig struct {
	// RegistryURL is the remote registry root.
	RegistryURL string
	// Timeout bounds the remote fetch.
	Timeout time.Duration
	// TemplatesDir replaces the bundled fallback when set.
	TemplatesDir string
	// Offline disables the remote registry.
	Offline bool
	// HTTPClient overrides the registry client. Its Timeout is left untouched.
	HTTPClient *http.Client
}

// NewResolver creates a remote-then-local resolver from configuration.
func NewResolver(cfg ResolverConfig) *Resolver {
	r := &Resolver{}

	if !cfg.Offline && cfg.RegistryURL != "" {
		remote := NewRegistryProvider(cfg.RegistryURL, cfg.Timeout)
		if cfg.HTTPClient != nil {
			remote.HTTPClient = cfg.HTTPClient
		}
		r.Remote = remote
	}

	if cfg.TemplatesDir != "" {
		r.Local = NewLocalProviderWithBase(cfg.TemplatesDir)
	} else {
		r.Local = NewLocalProvider()
	}

	return r
}
