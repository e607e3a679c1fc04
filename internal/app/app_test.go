package app

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacogips/billingkit/internal/deps"
	"github.com/tacogips/billingkit/internal/template/bundle"
	"github.com/tacogips/billingkit/internal/template/generator"
	"github.com/tacogips/billingkit/internal/template/matrix"
	"github.com/tacogips/billingkit/internal/template/model"
	"github.com/tacogips/billingkit/internal/template/provider"
)

type stubResolver struct {
	payload *model.Payload
	err     error
	calls   int
}

func (s *stubResolver) Resolve(ctx context.Context, f model.Framework, p model.Provider) (*provider.Resolution, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &provider.Resolution{
		Payload: s.payload,
		ID:      matrix.TemplateIdentifier(f, p),
		Source:  model.SourceRemote,
	}, nil
}

type fakeRunner struct {
	calls [][]string
	err   error
}

func (f *fakeRunner) Run(ctx context.Context, argv []string) error {
	f.calls = append(f.calls, argv)
	return f.err
}

// snapshot returns every regular file under root keyed by slash path.
func snapshot(t *testing.T, root string) map[string]string {
	t.Helper()
	files := make(map[string]string)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	require.NoError(t, err)
	return files
}

func TestScaffoldEmptyProject(t *testing.T) {
	root := t.TempDir()
	resolver := &stubResolver{payload: &model.Payload{
		Name:      "express-stripe",
		Framework: model.FrameworkExpress,
		Files: []model.FileEntry{
			{Target: "routes/stripe.ts", Content: "export const router = 1;\n", Type: model.FileKindTemplate},
			{Target: "lib/stripe.ts", Content: "export function createStripeClient() {}\n", Type: model.FileKindTemplate},
		},
		Dependencies: []string{"stripe"},
	}}
	runner := &fakeRunner{}

	result, err := Scaffold(context.Background(), ScaffoldOptions{
		ProjectRoot: root,
		Framework:   model.FrameworkExpress,
		Provider:    model.ProviderStripe,
		Resolver:    resolver,
		Installer:   deps.NewInstaller(runner, deps.NPM, false),
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"routes/stripe.ts": "export const router = 1;\n",
		"lib/stripe.ts":    "export function createStripeClient() {}\n",
	}, snapshot(t, root))
	assert.Equal(t, 2, result.Generate.FilesCreated)
	assert.Equal(t, "express-stripe", result.TemplateID)

	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"npm", "install", "stripe"}, runner.calls[0])
	assert.True(t, result.Install.Installed)
	assert.Empty(t, result.MissingEnv)
}

func TestScaffoldMergesEnvExample(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env.example"), []byte("API_KEY=existing\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte("API_KEY=real\n"), 0644))

	resolver := &stubResolver{payload: &model.Payload{
		Name:      "nextjs-dodopayments",
		Framework: model.FrameworkNextJS,
		Files: []model.FileEntry{
			{Target: ".env.example", Content: "API_KEY=new\nSECRET=abc", Type: model.FileKindConfig},
		},
	}}

	result, err := Scaffold(context.Background(), ScaffoldOptions{
		ProjectRoot: root,
		Framework:   model.FrameworkNextJS,
		Provider:    model.ProviderDodoPayments,
		Resolver:    resolver,
		Confirmer:   generator.Accept,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, ".env.example"))
	require.NoError(t, err)
	assert.Equal(t, "API_KEY=existing\nSECRET=abc\n", string(data))
	assert.Equal(t, 1, result.Generate.FilesMerged)
	assert.Equal(t, []string{"SECRET"}, result.MissingEnv)
}

func TestScaffoldRejectsUnsupportedPair(t *testing.T) {
	root := t.TempDir()
	resolver := &stubResolver{err: errors.New("must not be called")}
	runner := &fakeRunner{}

	require.False(t, matrix.IsValidCombination(model.FrameworkReact, model.ProviderPayPal))

	result, err := Scaffold(context.Background(), ScaffoldOptions{
		ProjectRoot: root,
		Framework:   model.FrameworkReact,
		Provider:    model.ProviderPayPal,
		Resolver:    resolver,
		Installer:   deps.NewInstaller(runner, deps.NPM, false),
	})
	require.Error(t, err)
	assert.Nil(t, result)

	errType, ok := ErrorType(err)
	require.True(t, ok)
	assert.Equal(t, ValidationFailed, errType)
	assert.Zero(t, resolver.calls)
	assert.Empty(t, runner.calls)
	assert.Empty(t, snapshot(t, root))
}

func TestScaffoldRemoteFailureFallsBackToBundle(t *testing.T) {
	id := matrix.TemplateIdentifier(model.FrameworkExpress, model.ProviderStripe)
	body, err := fs.ReadFile(bundle.FS(), id+".json")
	require.NoError(t, err)

	var requests int
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.URL.Path != "/tr/"+id+".json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
	defer healthy.Close()

	// A closed server refuses connections.
	down := httptest.NewServer(http.NotFoundHandler())
	downURL := down.URL
	down.Close()

	run := func(registryURL string) (*ScaffoldResult, map[string]string) {
		root := t.TempDir()
		result, err := Scaffold(context.Background(), ScaffoldOptions{
			ProjectRoot: root,
			Framework:   model.FrameworkExpress,
			Provider:    model.ProviderStripe,
			Resolver: provider.NewResolver(provider.ResolverConfig{
				RegistryURL: registryURL,
				Timeout:     2 * time.Second,
			}),
			Installer: deps.NewInstaller(&fakeRunner{}, deps.NPM, true),
		})
		require.NoError(t, err)
		return result, snapshot(t, root)
	}

	remoteResult, remoteFiles := run(healthy.URL + "/tr/")
	assert.Equal(t, model.SourceRemote, remoteResult.Source)
	assert.Equal(t, 1, requests)

	fallbackResult, fallbackFiles := run(downURL + "/tr/")
	assert.Equal(t, model.SourceLocal, fallbackResult.Source)
	assert.Error(t, fallbackResult.RemoteErr)

	assert.NotEmpty(t, remoteFiles)
	assert.Equal(t, remoteFiles, fallbackFiles)
	assert.True(t, fallbackResult.Install.Skipped)
}

func TestScaffoldResolutionFailure(t *testing.T) {
	root := t.TempDir()
	resolver := &stubResolver{err: &provider.ResolutionError{ID: "express-stripe", Attempts: []error{errors.New("down")}}}

	_, err := Scaffold(context.Background(), ScaffoldOptions{
		ProjectRoot: root,
		Framework:   model.FrameworkExpress,
		Provider:    model.ProviderStripe,
		Resolver:    resolver,
	})
	require.Error(t, err)

	errType, _ := ErrorType(err)
	assert.Equal(t, ResolutionFailed, errType)
	var resErr *provider.ResolutionError
	assert.ErrorAs(t, err, &resErr)
	assert.Empty(t, snapshot(t, root))
}

func TestScaffoldInstallFailureIsNotFatal(t *testing.T) {
	root := t.TempDir()
	resolver := &stubResolver{payload: &model.Payload{
		Name:         "hono-stripe",
		Framework:    model.FrameworkHono,
		Files:        []model.FileEntry{{Target: "a.ts", Content: "a", Type: model.FileKindTemplate}},
		Dependencies: []string{"stripe", "hono"},
	}}
	runner := &fakeRunner{err: errors.New("exit status 1")}

	result, err := Scaffold(context.Background(), ScaffoldOptions{
		ProjectRoot: root,
		Framework:   model.FrameworkHono,
		Provider:    model.ProviderStripe,
		Resolver:    resolver,
		Installer:   deps.NewInstaller(runner, deps.Bun, false),
	})
	require.NoError(t, err)

	var installErr *deps.InstallError
	require.ErrorAs(t, result.InstallErr, &installErr)
	assert.Equal(t, []string{"bun", "add", "stripe", "hono"}, installErr.Command)
	assert.FileExists(t, filepath.Join(root, "a.ts"))
}

func TestScaffoldCancellation(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.ts"), []byte("mine"), 0644))
	resolver := &stubResolver{payload: &model.Payload{
		Name:         "express-stripe",
		Framework:    model.FrameworkExpress,
		Files:        []model.FileEntry{{Target: "a.ts", Content: "theirs"}, {Target: "b.ts", Content: "b"}},
		Dependencies: []string{"stripe"},
	}}
	runner := &fakeRunner{}

	_, err := Scaffold(context.Background(), ScaffoldOptions{
		ProjectRoot: root,
		Framework:   model.FrameworkExpress,
		Provider:    model.ProviderStripe,
		Resolver:    resolver,
		Confirmer: generator.ConfirmFunc(func(context.Context, string) (bool, error) {
			return false, ErrCancelled
		}),
		Installer: deps.NewInstaller(runner, deps.NPM, false),
	})
	require.Error(t, err)
	assert.True(t, IsCancelled(err))
	assert.Empty(t, runner.calls)
	assert.Equal(t, map[string]string{"a.ts": "mine"}, snapshot(t, root))
}

func TestScaffoldAllFilesFailed(t *testing.T) {
	resolver := &stubResolver{payload: &model.Payload{
		Name:         "express-stripe",
		Framework:    model.FrameworkExpress,
		Files:        []model.FileEntry{{Target: "../outside.ts", Content: "x"}},
		Dependencies: []string{"stripe"},
	}}
	runner := &fakeRunner{}

	result, err := Scaffold(context.Background(), ScaffoldOptions{
		ProjectRoot: t.TempDir(),
		Framework:   model.FrameworkExpress,
		Provider:    model.ProviderStripe,
		Resolver:    resolver,
		Installer:   deps.NewInstaller(runner, deps.NPM, false),
	})
	require.Error(t, err)
	errType, _ := ErrorType(err)
	assert.Equal(t, MaterializeFailed, errType)
	require.NotNil(t, result)
	assert.Empty(t, runner.calls)
}

func TestScaffoldDryRun(t *testing.T) {
	root := t.TempDir()
	resolver := &stubResolver{payload: &model.Payload{
		Name:         "express-stripe",
		Framework:    model.FrameworkExpress,
		Files:        []model.FileEntry{{Target: "a.ts", Content: "a"}},
		Dependencies: []string{"stripe"},
	}}
	runner := &fakeRunner{}

	result, err := Scaffold(context.Background(), ScaffoldOptions{
		ProjectRoot: root,
		Framework:   model.FrameworkExpress,
		Provider:    model.ProviderStripe,
		Resolver:    resolver,
		Installer:   deps.NewInstaller(runner, deps.PNPM, false),
		DryRun:      true,
	})
	require.NoError(t, err)

	assert.Empty(t, snapshot(t, root))
	assert.Empty(t, runner.calls)
	assert.True(t, result.Install.Skipped)
	assert.Equal(t, []string{"pnpm", "add", "stripe"}, result.Install.Command)
}

func TestScaffoldValidation(t *testing.T) {
	tests := []struct {
		name string
		opts ScaffoldOptions
	}{
		{"missing root", ScaffoldOptions{Framework: model.FrameworkExpress, Provider: model.ProviderStripe, Resolver: &stubResolver{}}},
		{"unknown framework", ScaffoldOptions{ProjectRoot: "x", Framework: "rails", Provider: model.ProviderStripe, Resolver: &stubResolver{}}},
		{"unknown provider", ScaffoldOptions{ProjectRoot: "x", Framework: model.FrameworkExpress, Provider: "square", Resolver: &stubResolver{}}},
		{"missing resolver", ScaffoldOptions{ProjectRoot: "x", Framework: model.FrameworkExpress, Provider: model.ProviderStripe}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Scaffold(context.Background(), tt.opts)
			errType, ok := ErrorType(err)
			require.True(t, ok)
			assert.Equal(t, ValidationFailed, errType)
		})
	}
}

func TestAppErrors(t *testing.T) {
	cause := errors.New("boom")
	err := NewResolutionError("failed", cause)
	assert.Equal(t, "failed: boom", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "ResolutionFailed", err.Type.String())

	assert.True(t, IsCancelled(NewCancelledError()))
	assert.True(t, IsCancelled(generator.ErrCancelled))
	assert.False(t, IsCancelled(cause))
}
