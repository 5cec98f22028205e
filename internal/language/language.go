// file: internal/language/language.go
// version: 1.0.0
// guid: 6d3a9f2e-5b8c-4d1a-9e6f-2c7b4a8d0e3f

package language

import (
	"strings"

	"github.com/audiobiblio/tagsuggest/internal/textutil"
)

// Language codes produced by the inferencer.
const (
	Czech        = "cz"
	Slovak       = "sk"
	English      = "en"
	Undetermined = ""
)

// DefaultGenre is the genre applied when no language can be inferred.
// The primary target corpus is Czech-language audiobooks, so the
// undetermined case deliberately falls back to the Czech genre label.
// Overridable via the default_genre config key.
const DefaultGenre = "audiokniha"

// Marker substrings checked against diacritic-stripped, lower-cased
// comments. Czech markers are checked first; a comment matching any
// Czech marker casts one Czech vote and is never also counted as Slovak.
var (
	czechMarkers  = []string{"cte", "uvod", "autor"}
	slovakMarkers = []string{"citaj", "preklad"}
)

var genreByLanguage = map[string]string{
	Czech:   "audiokniha",
	Slovak:  "audiokniha (SK)",
	English: "audiobook",
}

// Infer votes a language code from the comment strings of all files in
// a folder. Each comment casts at most one vote; the plurality wins,
// with ties broken by whichever language was seen first. No markers at
// all yields Undetermined.
func Infer(comments []string) string {
	votes := make(map[string]int)
	var seen []string
	for _, c := range comments {
		lang := classify(c)
		if lang == Undetermined {
			continue
		}
		if _, ok := votes[lang]; !ok {
			seen = append(seen, lang)
		}
		votes[lang]++
	}

	best := Undetermined
	bestCount := 0
	for _, lang := range seen {
		if votes[lang] > bestCount {
			best = lang
			bestCount = votes[lang]
		}
	}
	return best
}

// classify assigns a single comment to a language by keyword containment.
func classify(comment string) string {
	normalized := strings.ToLower(textutil.StripDiacritics(comment))
	for _, m := range czechMarkers {
		if strings.Contains(normalized, m) {
			return Czech
		}
	}
	for _, m := range slovakMarkers {
		if strings.Contains(normalized, m) {
			return Slovak
		}
	}
	return Undetermined
}

// GenreFor maps an inferred language code to its suggested genre label.
// Unknown or undetermined codes get DefaultGenre.
func GenreFor(lang string) string {
	if g, ok := genreByLanguage[lang]; ok {
		return g
	}
	return DefaultGenre
}
