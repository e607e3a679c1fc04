// Package matrix holds the static framework/provider compatibility table.
package matrix

import (
	"github.com/tacogips/billingkit/internal/template/model"
)

// Entry is one supported (framework, provider) pair.
type Entry struct {
	Framework model.Framework `json:"framework" yaml:"framework"`
	Provider  model.Provider  `json:"provider" yaml:"provider"`
	ID        string          `json:"id" yaml:"id"`
}

// SupportedFrameworks returns the frameworks a provider has templates for.
// Unknown providers support nothing.
func SupportedFrameworks(p model.Provider) []model.Framework {
	switch p {
	case model.ProviderDodoPayments:
		return []model.Framework{
			model.FrameworkNextJS,
			model.FrameworkExpress,
			model.FrameworkReact,
			model.FrameworkFastify,
			model.FrameworkHono,
			model.FrameworkNestJS,
		}
	case model.ProviderStripe:
		return []model.Framework{
			model.FrameworkNextJS,
			model.FrameworkExpress,
			model.FrameworkReact,
			model.FrameworkFastify,
			model.FrameworkHono,
		}
	case model.ProviderPayPal:
		return []model.Framework{
			model.FrameworkNextJS,
			model.FrameworkExpress,
		}
	default:
		return nil
	}
}

// IsValidCombination reports whether a template exists for the pair.
func IsValidCombination(f model.Framework, p model.Provider) bool {
	for _, supported := range SupportedFrameworks(p) {
		if supported == f {
			return true
		}
	}
	return false
}

// AllowedProviders returns the providers that support f, in display order.
func AllowedProviders(f model.Framework) []model.Provider {
	var providers []model.Provider
	for _, p := range model.Providers() {
		if IsValidCombination(f, p) {
			providers = append(providers, p)
		}
	}
	return providers
}

// TemplateIdentifier returns the registry name of the pair's template.
// It is used both as the remote resource name and the bundled file name.
func TemplateIdentifier(f model.Framework, p model.Provider) string {
	return string(f) + "-" + string(p)
}

// Entries returns every supported pair ordered by provider, then framework.
func Entries() []Entry {
	var entries []Entry
	for _, p := range model.Providers() {
		for _, f := range SupportedFrameworks(p) {
			entries = append(entries, Entry{
				Framework: f,
				Provider:  p,
				ID:        TemplateIdentifier(f, p),
			})
		}
	}
	return entries
}
