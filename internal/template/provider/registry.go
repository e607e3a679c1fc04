package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tacogips/billingkit/internal/debug"
	"github.com/tacogips/billingkit/internal/template/model"
)

// maxPayloadSize caps the response body read from the registry.
const maxPayloadSize = 4 << 20

// DefaultTimeout replaces a missing or non-positive registry timeout.
const DefaultTimeout = 10 * time.Second

// RegistryProvider implements Provider for the HTTP template registry.
type RegistryProvider struct {
	// HTTPClient is the client used for requests. It is owned by the caller.
	HTTPClient *http.Client
	// BaseURL is the registry root; identifiers are appended as <id>.json.
	BaseURL string
}

// NewRegistryProvider creates a registry provider with its own client bounded
// by timeout.
func NewRegistryProvider(baseURL string, timeout time.Duration) *RegistryProvider {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &RegistryProvider{
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		BaseURL: baseURL,
	}
}

// Name returns the provider name.
func (p *RegistryProvider) Name() string {
	return "registry"
}

// URL returns the resource URL for a template identifier.
func (p *RegistryProvider) URL(id string) string {
	base := p.BaseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + id + ".json"
}

// Fetch downloads and validates a template payload.
func (p *RegistryProvider) Fetch(ctx context.Context, id string) (*model.Payload, error) {
	url := p.URL(id)
	debug.Debug("[registry] Fetching: %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, NewFetchError(p.Name(), url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.HTTPClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, NewTimeoutError(p.Name(), url, err)
		}
		return nil, NewFetchError(p.Name(), url, err)
	}
	defer resp.Body.Close()

	debug.Debug("[registry] Response status: %d", resp.StatusCode)
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, NewNotFoundError(p.Name(), url)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, NewFetchError(p.Name(), url,
			fmt.Errorf("unexpected status code: %d", resp.StatusCode))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadSize))
	if err != nil {
		if isTimeout(err) {
			return nil, NewTimeoutError(p.Name(), url, err)
		}
		return nil, NewFetchError(p.Name(), url, fmt.Errorf("failed to read response: %w", err))
	}

	return decodePayload(p.Name(), url, data)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var timeout interface{ Timeout() bool }
	return errors.As(err, &timeout) && timeout.Timeout()
}
