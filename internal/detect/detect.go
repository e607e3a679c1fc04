// Package detect guesses a project's framework from its manifest and marker
// files. The guess is only used to pre-select a prompt answer.
package detect

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/tacogips/billingkit/internal/debug"
	"github.com/tacogips/billingkit/internal/template/model"
)

// ManifestFile is the project manifest inspected for dependencies.
const ManifestFile = "package.json"

// marker is a file or directory whose presence identifies a framework.
type marker struct {
	path      string
	dir       bool
	framework model.Framework
}

// Checked in order; committed configuration beats a dependency entry.
var markers = []marker{
	{path: "nest-cli.json", framework: model.FrameworkNestJS},
	{path: "next.config.js", framework: model.FrameworkNextJS},
	{path: "next.config.mjs", framework: model.FrameworkNextJS},
	{path: "next.config.ts", framework: model.FrameworkNextJS},
	{path: "next.config.cjs", framework: model.FrameworkNextJS},
	{path: ".next", dir: true, framework: model.FrameworkNextJS},
}

// dependencyOrder lists package names from most to least specific. react
// comes last because every Next.js project depends on it too.
var dependencyOrder = []struct {
	pkg       string
	framework model.Framework
}{
	{"@nestjs/core", model.FrameworkNestJS},
	{"next", model.FrameworkNextJS},
	{"hono", model.FrameworkHono},
	{"fastify", model.FrameworkFastify},
	{"express", model.FrameworkExpress},
	{"react", model.FrameworkReact},
}

type manifest struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// Detect returns the framework projectRoot most likely uses. It never fails:
// any read or parse problem yields ("", false).
func Detect(projectRoot string) (model.Framework, bool) {
	for _, m := range markers {
		info, err := os.Stat(filepath.Join(projectRoot, m.path))
		if err != nil || info.IsDir() != m.dir {
			continue
		}
		debug.Debug("[detect] Found marker %s -> %s", m.path, m.framework)
		return m.framework, true
	}

	data, err := os.ReadFile(filepath.Join(projectRoot, ManifestFile))
	if err != nil {
		debug.Debug("[detect] No manifest: %v", err)
		return "", false
	}

	var pkg manifest
	if err := json.Unmarshal(data, &pkg); err != nil {
		debug.Debug("[detect] Failed to parse %s: %v", ManifestFile, err)
		return "", false
	}

	for _, d := range dependencyOrder {
		if _, ok := pkg.Dependencies[d.pkg]; ok {
			debug.Debug("[detect] Found dependency %s -> %s", d.pkg, d.framework)
			return d.framework, true
		}
		if _, ok := pkg.DevDependencies[d.pkg]; ok {
			debug.Debug("[detect] Found dev dependency %s -> %s", d.pkg, d.framework)
			return d.framework, true
		}
	}

	return "", false
}
