package app

import (
	"github.com/tacogips/billingkit/internal/template/bundle"
	"github.com/tacogips/billingkit/internal/template/matrix"
	"github.com/tacogips/billingkit/internal/template/model"
)

// CatalogEntry is one supported framework and provider pair.
type CatalogEntry struct {
	ID        string          `json:"id" yaml:"id"`
	Framework model.Framework `json:"framework" yaml:"framework"`
	Provider  model.Provider  `json:"provider" yaml:"provider"`
	// Bundled is set when the binary ships an offline copy of the template.
	Bundled bool `json:"bundled" yaml:"bundled"`
}

// Catalog lists every supported pair, optionally restricted to one framework
// or provider. Empty filters match everything.
func Catalog(framework model.Framework, prov model.Provider) []CatalogEntry {
	bundled := make(map[string]bool)
	for _, id := range bundle.Identifiers() {
		bundled[id] = true
	}

	var entries []CatalogEntry
	for _, e := range matrix.Entries() {
		if framework != "" && e.Framework != framework {
			continue
		}
		if prov != "" && e.Provider != prov {
			continue
		}
		entries = append(entries, CatalogEntry{
			ID:        e.ID,
			Framework: e.Framework,
			Provider:  e.Provider,
			Bundled:   bundled[e.ID],
		})
	}
	return entries
}
