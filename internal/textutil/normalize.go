// file: internal/textutil/normalize.go
// version: 1.0.0
// guid: 3f8a2b1c-9d4e-4f6a-8b2c-5e7d9a1f3c6b

package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StripDiacritics returns an ASCII-compatible approximation of s:
// accented characters are decomposed and their combining marks dropped
// ("Čte" → "Cte"). Stripping is idempotent and never fails; if the
// transform cannot process the input, the input is returned unchanged.
func StripDiacritics(s string) string {
	if s == "" {
		return ""
	}
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// TitleCase normalizes a person-name string: diacritics stripped,
// trimmed, whitespace runs collapsed to single spaces, and the first
// letter of each word upper-cased. Used for authors and narrators.
func TitleCase(s string) string {
	s = strings.TrimSpace(StripDiacritics(s))
	if s == "" {
		return ""
	}
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
