package generator

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/tacogips/billingkit/internal/debug"
	"github.com/tacogips/billingkit/internal/template/model"
)

// defaultFileMode is used for files that do not exist yet.
const defaultFileMode os.FileMode = 0644

// Generator writes template payloads into a project.
type Generator interface {
	// Generate writes the payload's files in order. A failing file is recorded
	// in the result and the remaining files are still processed.
	Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error)

	// DryRun reports what Generate would do without touching the file system.
	DryRun(ctx context.Context, opts GenerateOptions) (*GenerateResult, error)
}

// Confirmer decides whether an existing file may be replaced.
type Confirmer interface {
	// ConfirmOverwrite is asked once per existing non-env file. Returning
	// ErrCancelled aborts the run; any other error counts as a refusal.
	ConfirmOverwrite(ctx context.Context, path string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, path string) (bool, error)

// ConfirmOverwrite calls f.
func (f ConfirmFunc) ConfirmOverwrite(ctx context.Context, path string) (bool, error) {
	return f(ctx, path)
}

// Decline refuses every overwrite. It is the default for non-interactive runs.
var Decline Confirmer = ConfirmFunc(func(context.Context, string) (bool, error) { return false, nil })

// Accept allows every overwrite.
var Accept Confirmer = ConfirmFunc(func(context.Context, string) (bool, error) { return true, nil })

// GenerateOptions configures a generation run.
type GenerateOptions struct {
	// Payload is the template to write.
	Payload *model.Payload

	// ProjectRoot is the project directory. Files go to ProjectRoot/src when
	// that directory exists.
	ProjectRoot string

	// Confirmer is asked before existing files are replaced. Nil declines.
	Confirmer Confirmer
}

// Status is the outcome for a single file.
type Status string

const (
	StatusCreated     Status = "created"
	StatusOverwritten Status = "overwritten"
	StatusMerged      Status = "merged"
	StatusUnchanged   Status = "unchanged"
	StatusSkipped     Status = "skipped"
	StatusFailed      Status = "failed"
	// StatusPending marks files a dry run would ask about.
	StatusPending Status = "pending"
)

// FileResult describes what happened to one payload entry.
type FileResult struct {
	// Target is the entry's target as declared in the payload.
	Target string
	// Path is the absolute destination, empty when the target was rejected.
	Path string
	// Action is the policy selected for the entry.
	Action Action
	// Status is the outcome.
	Status Status
	// Err is set when Status is StatusFailed.
	Err error
}

// GenerateResult contains generation statistics.
type GenerateResult struct {
	// SourceRoot is the directory targets were resolved against.
	SourceRoot string

	FilesCreated     int
	FilesOverwritten int
	FilesMerged      int
	// FilesUnchanged counts env-example merges that had nothing to add.
	FilesUnchanged int
	// FilesSkipped counts existing files the user chose to keep.
	FilesSkipped int

	// Errors contains non-fatal per-file errors.
	Errors []error

	// Files has one entry per payload file, in payload order.
	Files []FileResult
}

// Failed reports whether every attempted file failed. A run with at least one
// file handled, or with no files at all, is a success.
func (r *GenerateResult) Failed() bool {
	return len(r.Files) > 0 && len(r.Errors) == len(r.Files)
}

// DefaultGenerator implements Generator.
type DefaultGenerator struct {
	writer Writer
}

// NewGenerator creates a generator that writes to the real file system.
func NewGenerator() Generator {
	return &DefaultGenerator{writer: NewFileWriter()}
}

// NewGeneratorWithWriter creates a generator over a custom Writer.
func NewGeneratorWithWriter(w Writer) Generator {
	return &DefaultGenerator{writer: w}
}

// Generate writes the payload into the project.
func (g *DefaultGenerator) Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	return g.generate(ctx, opts, false)
}

// DryRun simulates generation without writing files.
func (g *DefaultGenerator) DryRun(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	return g.generate(ctx, opts, true)
}

func (g *DefaultGenerator) generate(ctx context.Context, opts GenerateOptions, dryRun bool) (*GenerateResult, error) {
	if opts.Payload == nil {
		return nil, fmt.Errorf("payload cannot be nil")
	}
	if opts.ProjectRoot == "" {
		return nil, fmt.Errorf("project root cannot be empty")
	}
	confirmer := opts.Confirmer
	if confirmer == nil {
		confirmer = Decline
	}

	// Decided once; every entry is resolved against the same base.
	base := SourceRoot(opts.ProjectRoot)
	debug.Debug("[generator] Starting generation: payload=%s, base=%s, files=%d, dryRun=%v",
		opts.Payload.Name, base, len(opts.Payload.Files), dryRun)

	result := &GenerateResult{
		SourceRoot: base,
		Errors:     []error{},
		Files:      make([]FileResult, 0, len(opts.Payload.Files)),
	}

	for _, entry := range opts.Payload.Files {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		fr, err := g.apply(ctx, base, entry, confirmer, dryRun)
		if errors.Is(err, ErrCancelled) {
			return result, err
		}
		result.record(fr)
	}

	debug.Debug("[generator] Done: created=%d overwritten=%d merged=%d unchanged=%d skipped=%d errors=%d",
		result.FilesCreated, result.FilesOverwritten, result.FilesMerged,
		result.FilesUnchanged, result.FilesSkipped, len(result.Errors))
	return result, nil
}

// apply handles one entry. The only error it returns is ErrCancelled; every
// other failure is carried in the FileResult.
func (g *DefaultGenerator) apply(ctx context.Context, base string, entry model.FileEntry, confirmer Confirmer, dryRun bool) (FileResult, error) {
	fr := FileResult{Target: entry.Target}

	dest, err := ResolveTarget(base, entry.Target)
	if err != nil {
		debug.Debug("[generator] Rejected target %q: %v", entry.Target, err)
		return fr.fail(err), nil
	}
	fr.Path = dest

	info, statErr := g.writer.Stat(dest)
	exists := statErr == nil
	if statErr != nil && !os.IsNotExist(statErr) {
		return fr.fail(newGeneratorError(GeneratorWriteFailed, "failed to inspect destination", dest, statErr)), nil
	}
	if exists && info.IsDir() {
		return fr.fail(newGeneratorError(GeneratorWriteFailed, "destination is a directory", dest, nil)), nil
	}

	fr.Action = DecideAction(exists, entry.Target)
	debug.Debug("[generator] %s -> %s (action: %s)", entry.Target, dest, fr.Action)

	switch fr.Action {
	case ActionWrite:
		if dryRun {
			fr.Status = StatusCreated
			return fr, nil
		}
		if err := g.writer.WriteFile(dest, []byte(entry.Content), defaultFileMode); err != nil {
			return fr.fail(err), nil
		}
		fr.Status = StatusCreated
		return fr, nil

	case ActionMerge:
		current, err := g.writer.ReadFile(dest)
		if err != nil {
			return fr.fail(newGeneratorError(GeneratorMergeFailed, "failed to read existing file", dest, err)), nil
		}
		merged, changed := MergeEnv(string(current), entry.Content)
		if !changed {
			fr.Status = StatusUnchanged
			return fr, nil
		}
		if !dryRun {
			if err := g.writer.WriteFile(dest, []byte(merged), info.Mode().Perm()); err != nil {
				return fr.fail(err), nil
			}
		}
		fr.Status = StatusMerged
		return fr, nil

	default:
		if dryRun {
			fr.Status = StatusPending
			return fr, nil
		}
		ok, err := confirmer.ConfirmOverwrite(ctx, dest)
		if errors.Is(err, ErrCancelled) {
			return fr, err
		}
		if err != nil {
			debug.Debug("[generator] Confirmation failed for %s, keeping file: %v", dest, err)
			ok = false
		}
		if !ok {
			fr.Status = StatusSkipped
			return fr, nil
		}
		if err := g.writer.WriteFile(dest, []byte(entry.Content), info.Mode().Perm()); err != nil {
			return fr.fail(err), nil
		}
		fr.Status = StatusOverwritten
		return fr, nil
	}
}

func (fr FileResult) fail(err error) FileResult {
	fr.Status = StatusFailed
	fr.Err = err
	return fr
}

func (r *GenerateResult) record(fr FileResult) {
	r.Files = append(r.Files, fr)
	switch fr.Status {
	case StatusCreated:
		r.FilesCreated++
	case StatusOverwritten:
		r.FilesOverwritten++
	case StatusMerged:
		r.FilesMerged++
	case StatusUnchanged:
		r.FilesUnchanged++
	case StatusSkipped, StatusPending:
		r.FilesSkipped++
	case StatusFailed:
		r.Errors = append(r.Errors, fr.Err)
	}
}
