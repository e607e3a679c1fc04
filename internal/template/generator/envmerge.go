package generator

import "strings"

// MergeEnv appends the key=value lines of incoming whose keys are not yet
// defined in existing. Existing content is never modified or reordered.
//
// Comment and blank lines of incoming are carried along whenever at least one
// new key is appended. When no new key remains, existing is returned as is and
// changed is false, so merging the same content twice is a no-op.
func MergeEnv(existing, incoming string) (merged string, changed bool) {
	keys := envKeys(existing)

	var kept []string
	var newKeys int
	for _, line := range splitLines(incoming) {
		key, ok := envKey(line)
		if !ok {
			kept = append(kept, line)
			continue
		}
		if _, dup := keys[key]; dup {
			continue
		}
		keys[key] = struct{}{}
		kept = append(kept, line)
		newKeys++
	}

	if newKeys == 0 {
		return existing, false
	}

	var b strings.Builder
	b.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		b.WriteString("\n")
	}
	for _, line := range kept {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String(), true
}

// envKeys collects the keys defined in an env file.
func envKeys(content string) map[string]struct{} {
	keys := make(map[string]struct{})
	for _, line := range splitLines(content) {
		if key, ok := envKey(line); ok {
			keys[key] = struct{}{}
		}
	}
	return keys
}

// envKey returns the key of a key=value line. Blank lines and comments have
// no key.
func envKey(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", false
	}
	key, _, _ := strings.Cut(trimmed, "=")
	return strings.TrimSpace(key), true
}

// splitLines splits content into lines. A single trailing newline terminates
// the last line rather than starting an empty one.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}
