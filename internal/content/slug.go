package content

import (
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slugify lowercases s, strips accents and reduces it to ASCII letters,
// digits and single hyphens. Spaces, underscores, dots and hyphens
// separate words; any other character is dropped.
func Slugify(s string) string {
	return string(appendSlug(nil, s))
}

// SlugFromPath turns a content-relative file path into a post slug,
// slugifying each directory segment and dropping the extension. Segments
// that slugify to nothing are left out.
func SlugFromPath(rel string) string {
	rel = strings.TrimSuffix(filepath.ToSlash(rel), filepath.Ext(rel))

	var out []byte
	for _, seg := range strings.Split(rel, "/") {
		sep := len(out)
		if sep > 0 {
			out = append(out, '/')
		}
		body := len(out)
		if out = appendSlug(out, seg); len(out) == body {
			out = out[:sep]
		}
	}
	return string(out)
}

func appendSlug(dst []byte, s string) []byte {
	// A fresh chain per call: transformers carry state.
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(fold, s); err == nil {
		s = folded
	}

	start := len(dst)
	gap := false
	for _, r := range s {
		switch {
		case 'a' <= r && r <= 'z', '0' <= r && r <= '9':
		case 'A' <= r && r <= 'Z':
			r += 'a' - 'A'
		case r == '-' || r == '_' || r == '.' || unicode.IsSpace(r):
			gap = true
			continue
		default:
			continue
		}
		if gap && len(dst) > start {
			dst = append(dst, '-')
		}
		gap = false
		dst = append(dst, byte(r))
	}
	return dst
}
