package utils

import "strings"

// NormalizeStoreName: trim, lower-case, выкинуть всё, что не [a-z0-9-_].
func NormalizeStoreName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	return b.String()
}
