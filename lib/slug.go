package lib

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Slugify converts a display name into a URL slug: accents are folded to ASCII,
// anything other than letters, digits, underscores, hyphens and spaces is dropped,
// and runs of spaces or hyphens collapse into one hyphen.
func Slugify(s string) string {
	decomposed := norm.NFKD.String(s)

	var sb strings.Builder
	sb.Grow(len(decomposed))
	pendingDash := false

	for _, r := range decomposed {
		if r > unicode.MaxASCII {
			continue
		}
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
		case r >= 'A' && r <= 'Z':
			r = unicode.ToLower(r)
		case r == '-' || unicode.IsSpace(r):
			pendingDash = sb.Len() > 0
			continue
		default:
			continue
		}
		if pendingDash {
			sb.WriteByte('-')
			pendingDash = false
		}
		sb.WriteRune(r)
	}

	return strings.Trim(sb.String(), "-_")
}
