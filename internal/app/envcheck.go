package app

import (
	"errors"
	"io/fs"
	"sort"
	"strings"

	"github.com/joho/godotenv"
)

// MissingEnvKeys returns the keys declared in exampleFile that no file in
// envFiles defines with a non-empty value. Env files that do not exist are
// ignored. The result is sorted.
func MissingEnvKeys(exampleFile string, envFiles ...string) ([]string, error) {
	declared, err := godotenv.Read(exampleFile)
	if err != nil {
		return nil, err
	}

	defined := make(map[string]bool)
	for _, path := range envFiles {
		values, err := godotenv.Read(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		for key, value := range values {
			if strings.TrimSpace(value) != "" {
				defined[key] = true
			}
		}
	}

	var missing []string
	for key := range declared {
		if !defined[key] {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing, nil
}
