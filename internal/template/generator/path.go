package generator

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/tacogips/billingkit/internal/debug"
)

// SourceDir is preferred as the base directory when present.
const SourceDir = "src"

// SourceRoot returns <projectRoot>/src if it is a directory, else projectRoot.
func SourceRoot(projectRoot string) string {
	candidate := filepath.Join(projectRoot, SourceDir)
	if info, err := os.Stat(candidate); err == nil && info.IsDir() {
		debug.Debug("[generator] Using source root: %s", candidate)
		return candidate
	}
	debug.Debug("[generator] Using project root as source root: %s", projectRoot)
	return projectRoot
}

// ResolveTarget joins a payload target onto base and rejects targets that are
// absolute, contain ".." segments, or otherwise resolve outside base. Symlinks
// along the existing part of the path are followed before the check.
func ResolveTarget(base, target string) (string, error) {
	if target == "" {
		return "", newGeneratorError(GeneratorPathError, "empty target path", target, nil)
	}

	slashed := toSlash(target)
	if filepath.IsAbs(target) || strings.HasPrefix(slashed, "/") || filepath.VolumeName(target) != "" {
		return "", newGeneratorError(GeneratorPathError, "absolute target path is not allowed", target, nil)
	}
	for _, segment := range strings.Split(slashed, "/") {
		if segment == ".." {
			return "", newGeneratorError(GeneratorPathError, "target path escapes the project root", target, nil)
		}
	}

	absBase, err := filepath.Abs(base)
	if err != nil {
		return "", newGeneratorError(GeneratorPathError, "cannot resolve project root", base, err)
	}
	dest := filepath.Join(absBase, filepath.FromSlash(slashed))

	if !within(absBase, dest) {
		return "", newGeneratorError(GeneratorPathError, "target path escapes the project root", target, nil)
	}

	realBase, err := filepath.EvalSymlinks(absBase)
	if err != nil {
		realBase = absBase
	}
	realDest, err := evalExisting(dest)
	if err != nil {
		return "", newGeneratorError(GeneratorPathError, "cannot resolve target path", target, err)
	}
	if !within(realBase, realDest) {
		debug.Debug("[generator] Target %s resolves to %s outside %s", target, realDest, realBase)
		return "", newGeneratorError(GeneratorPathError, "target path escapes the project root through a symlink", target, nil)
	}

	return dest, nil
}

// within reports whether path is strictly below base.
func within(base, path string) bool {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// evalExisting resolves symlinks in the deepest existing ancestor of path and
// re-appends the segments that do not exist yet.
func evalExisting(path string) (string, error) {
	var missing []string
	current := path
	for {
		resolved, err := filepath.EvalSymlinks(current)
		if err == nil {
			for i := len(missing) - 1; i >= 0; i-- {
				resolved = filepath.Join(resolved, missing[i])
			}
			return resolved, nil
		}
		if !os.IsNotExist(err) {
			return "", err
		}
		parent := filepath.Dir(current)
		if parent == current {
			return path, nil
		}
		missing = append(missing, filepath.Base(current))
		current = parent
	}
}

// toSlash normalizes both separators so Windows-style targets are checked too.
func toSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}
