package domain

import (
	"strings"
	"unicode"
)

// NormalizeName prepares a container name for storage:
//   - trims leading/trailing whitespace
//   - collapses runs of whitespace into a single space
//
// Case is preserved; search is case-insensitive at query time.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(name))
	prevSpace := false
	for _, r := range name {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteRune(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// EscapeLike escapes LIKE/ILIKE metacharacters so s matches literally.
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
