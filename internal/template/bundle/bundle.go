// Package bundle embeds the template payloads shipped with the binary. They
// are the offline fallback when the remote registry cannot be reached.
package bundle

import (
	"embed"
	"io/fs"
	"sort"
	"strings"
)

//go:embed templates/*.json
var templatesFS embed.FS

// FS returns the bundled templates, one <identifier>.json per file.
func FS() fs.FS {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		// templates/ is embedded at compile time
		panic(err)
	}
	return sub
}

// Identifiers lists the bundled template identifiers in sorted order.
func Identifiers() []string {
	entries, err := fs.ReadDir(templatesFS, "templates")
	if err != nil {
		return nil
	}

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(entry.Name(), ".json"))
	}
	sort.Strings(ids)
	return ids
}
