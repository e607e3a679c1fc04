package provider

import (
	"context"
	"fmt"

	"github.com/tacogips/billingkit/internal/debug"
	"github.com/tacogips/billingkit/internal/template/matrix"
	"github.com/tacogips/billingkit/internal/template/model"
)

// Resolver obtains payloads from a remote provider with a local fallback.
type Resolver struct {
	// Remote is tried first. Nil means offline.
	Remote Provider
	// Local is tried when Remote is nil or fails.
	Local Provider
}

// Resolution is a successfully resolved payload.
type Resolution struct {
	// Payload is the resolved template.
	Payload *model.Payload
	// ID is the template identifier.
	ID string
	// Source tells which provider served the payload.
	Source model.Source
	// RemoteErr is the remote failure that caused a fallback, if any.
	RemoteErr error
}

// Resolve returns the payload for a (framework, provider) pair. Unsupported
// pairs are rejected before any provider is contacted. A *ResolutionError is
// returned only when every source failed.
func (r *Resolver) Resolve(ctx context.Context, f model.Framework, p model.Provider) (*Resolution, error) {
	if !matrix.IsValidCombination(f, p) {
		return nil, NewProviderError(ProviderUnsupported, "matrix", fmt.Sprintf("%s/%s", f, p),
			fmt.Sprintf("%s does not support %s", p.Label(), f.Label()), nil)
	}

	id := matrix.TemplateIdentifier(f, p)
	debug.DebugSection("Resolve " + id)

	var attempts []error

	if r.Remote != nil {
		payload, err := fetchChecked(ctx, r.Remote, id, f)
		if err == nil {
			debug.Debug("[resolver] Resolved %s from %s", id, r.Remote.Name())
			return &Resolution{Payload: payload, ID: id, Source: model.SourceRemote}, nil
		}
		debug.Debug("[resolver] Remote failed, falling back: %v", err)
		attempts = append(attempts, err)
	}

	if r.Local != nil {
		payload, err := fetchChecked(ctx, r.Local, id, f)
		if err == nil {
			debug.Debug("[resolver] Resolved %s from %s", id, r.Local.Name())
			res := &Resolution{Payload: payload, ID: id, Source: model.SourceLocal}
			if len(attempts) > 0 {
				res.RemoteErr = attempts[0]
			}
			return res, nil
		}
		attempts = append(attempts, err)
	}

	if len(attempts) == 0 {
		attempts = append(attempts, fmt.Errorf("no template sources configured"))
	}
	return nil, &ResolutionError{ID: id, Attempts: attempts}
}

// fetchChecked fetches a payload and rejects one written for another framework.
func fetchChecked(ctx context.Context, prov Provider, id string, f model.Framework) (*model.Payload, error) {
	payload, err := prov.Fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if payload.Framework != f {
		return nil, NewInvalidPayloadError(prov.Name(), id,
			fmt.Sprintf("payload targets %q, expected %q", payload.Framework, f), nil)
	}
	return payload, nil
}
