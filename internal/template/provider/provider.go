package provider

import (
	"context"
	"encoding/json"

	"github.com/tacogips/billingkit/internal/template/model"
)

// Provider abstracts template payload sources (HTTP registry, bundled files).
type Provider interface {
	// Fetch loads the payload named by a template identifier.
	Fetch(ctx context.Context, id string) (*model.Payload, error)

	// Name returns the provider name (e.g., "registry", "local").
	Name() string
}

// decodePayload validates raw JSON against the payload schema and decodes it.
func decodePayload(providerName, location string, data []byte) (*model.Payload, error) {
	if err := ValidatePayload(data); err != nil {
		return nil, NewInvalidPayloadError(providerName, location, "payload does not match schema", err)
	}

	var payload model.Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, NewInvalidPayloadError(providerName, location, "invalid JSON", err)
	}
	return &payload, nil
}
