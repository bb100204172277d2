package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	identifierStrip = regexp.MustCompile(`[^a-z0-9_]`)
	identifierShape = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_$]*$`)
)

// SanitizeIdentifier turns an arbitrary header string into a token safe to
// use as a column identifier: lowercase, spaces become underscores, anything
// outside [a-z0-9_] is stripped. A leading digit gets a "col_" prefix.
// Idempotent on its own output. An empty result is returned as-is; callers
// that need a name for every position use SanitizeHeaders.
func SanitizeIdentifier(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, " ", "_")
	s = identifierStrip.ReplaceAllString(s, "")
	if s != "" && s[0] >= '0' && s[0] <= '9' {
		s = "col_" + s
	}
	return s
}

// maxIdentifierLen is the Postgres identifier length limit.
const maxIdentifierLen = 63

// SanitizeHeaders sanitizes one header row into unique column identifiers,
// preserving order. Names are truncated to the identifier length limit,
// empty headers become column_<n> (1-based position) and collisions get a
// _2, _3, ... suffix, skipping suffixes an earlier header already claimed.
func SanitizeHeaders(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]int, len(raw))
	for i, h := range raw {
		name := SanitizeIdentifier(h)
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}
		if len(name) > maxIdentifierLen {
			name = name[:maxIdentifierLen]
		}
		if n, ok := seen[name]; ok {
			base := name
			for {
				n++
				name = suffixed(base, n)
				if _, taken := seen[name]; !taken {
					break
				}
			}
			seen[base] = n
		}
		seen[name] = 1
		out = append(out, name)
	}
	return out
}

// suffixed appends _<n>, trimming the base so the result stays within the
// identifier length limit.
func suffixed(base string, n int) string {
	suffix := fmt.Sprintf("_%d", n)
	if len(base)+len(suffix) > maxIdentifierLen {
		base = base[:maxIdentifierLen-len(suffix)]
	}
	return base + suffix
}

// IsValidIdentifier checks if a string is a valid PostgreSQL identifier.
func IsValidIdentifier(name string) bool {
	if name == "" || len(name) > maxIdentifierLen {
		return false
	}
	return identifierShape.MatchString(name)
}

var filenameStrip = regexp.MustCompile(`[^a-zA-Z0-9._ -]`)

// SanitizeFilename reduces an untrusted upload filename to a display-safe
// base name.
func SanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	return filenameStrip.ReplaceAllString(name, "")
}
