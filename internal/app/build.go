package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tacogips/billingkit/internal/debug"
	"github.com/tacogips/billingkit/internal/template/generator"
	"github.com/tacogips/billingkit/internal/template/matrix"
	"github.com/tacogips/billingkit/internal/template/model"
	"github.com/tacogips/billingkit/internal/template/provider"
)

// IndexFile lists every exported template in the output directory.
const IndexFile = "index.json"

// BuildOptions contains options for exporting the template registry.
type BuildOptions struct {
	// OutputDir receives one <identifier>.json per template plus index.json.
	OutputDir string
	// Source holds the templates to export. Nil uses the bundled templates.
	Source fs.FS
	// Overwrite replaces existing files in OutputDir.
	Overwrite bool
}

// IndexEntry describes one exported template.
type IndexEntry struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Framework    model.Framework `json:"framework"`
	Provider     model.Provider  `json:"provider"`
	Files        int             `json:"files"`
	Dependencies []string        `json:"dependencies,omitempty"`
}

// BuildResult contains the results of a registry export.
type BuildResult struct {
	// Written lists the files written, in matrix order, index last.
	Written []string
	// Index is the content of index.json.
	Index []IndexEntry
}

// Build validates every template the matrix allows and writes them as a
// static registry the resolver can fetch from. Every pair must have a valid
// template; nothing is written if any is missing or invalid.
func Build(ctx context.Context, opts BuildOptions) (*BuildResult, error) {
	if opts.OutputDir == "" {
		return nil, NewValidationError("output directory cannot be empty", nil)
	}

	local := provider.NewLocalProvider()
	if opts.Source != nil {
		local = &provider.LocalProvider{FS: opts.Source, Origin: "source"}
	}

	debug.DebugSection("Build registry")

	type exported struct {
		id   string
		data []byte
	}
	var (
		outputs []exported
		index   []IndexEntry
		errs    []error
	)

	for _, entry := range matrix.Entries() {
		payload, err := local.Fetch(ctx, entry.ID)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if payload.Framework != entry.Framework {
			errs = append(errs, fmt.Errorf("%s: payload targets %q", entry.ID, payload.Framework))
			continue
		}

		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", entry.ID, err))
			continue
		}
		outputs = append(outputs, exported{id: entry.ID, data: append(data, '\n')})
		index = append(index, IndexEntry{
			ID:           entry.ID,
			Name:         payload.Name,
			Description:  payload.Description,
			Framework:    entry.Framework,
			Provider:     entry.Provider,
			Files:        len(payload.Files),
			Dependencies: payload.Dependencies,
		})
		debug.Debug("[build] Validated %s (%d files)", entry.ID, len(payload.Files))
	}
	if len(errs) > 0 {
		return nil, NewBuildError(fmt.Sprintf("%d template(s) failed validation", len(errs)), errors.Join(errs...))
	}

	indexData, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return nil, NewBuildError("failed to encode index", err)
	}
	outputs = append(outputs, exported{id: "index", data: append(indexData, '\n')})

	if !opts.Overwrite {
		for _, out := range outputs {
			path := filepath.Join(opts.OutputDir, out.id+".json")
			if _, err := os.Stat(path); err == nil {
				return nil, NewBuildError(fmt.Sprintf("%s already exists (use --overwrite)", path), nil)
			}
		}
	}

	writer := generator.NewFileWriter()
	result := &BuildResult{Index: index}
	for _, out := range outputs {
		path := filepath.Join(opts.OutputDir, out.id+".json")
		if err := writer.WriteFile(path, out.data, 0644); err != nil {
			return result, NewBuildError("failed to write registry file", err)
		}
		result.Written = append(result.Written, path)
	}

	return result, nil
}
