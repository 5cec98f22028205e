// file: internal/narrator/narrator.go
// version: 1.0.0
// guid: 9e2f5a8b-1c4d-4e7f-a0b3-8d6c2f5e9a1b

package narrator

import (
	"strings"

	"github.com/audiobiblio/tagsuggest/internal/textutil"
)

// A rule inspects a comment string and either extracts a narrator name
// or declines. Rules run in fixed order and the first match wins; later
// rules never override an earlier match, so the slice order encodes
// precedence.
type rule struct {
	name    string
	extract func(comment string) (string, bool)
}

var rules = []rule{
	{"colon", fromColon},
	{"cte marker", markerRule("cte")},
	{"read by marker", markerRule("read by")},
	{"trailing name", fromTrailingTokens},
}

// separators that may follow a narration marker before the name starts.
const markerSeparators = " \t:-"

// FromComment derives a best-guess narrator name from a tag comment,
// or "" when the comment carries no usable signal. Matches label
// conventions like "Narrator: Name", "Čte: Name", "cte Name" and
// "read by Name", with a weak trailing "First Last" fallback.
func FromComment(comment string) string {
	if strings.TrimSpace(comment) == "" {
		return ""
	}
	for _, r := range rules {
		if name, ok := r.extract(comment); ok {
			return name
		}
	}
	return ""
}

// fromColon handles colon-delimited "Label: Value" comments. The label
// language does not matter; everything after the first colon is the value.
func fromColon(comment string) (string, bool) {
	idx := strings.Index(comment, ":")
	if idx < 0 {
		return "", false
	}
	return textutil.TitleCase(comment[idx+1:]), true
}

// markerRule matches a narration marker ("cte", "read by") in the
// diacritic-stripped, lower-cased comment and extracts the text after it.
func markerRule(marker string) func(string) (string, bool) {
	return func(comment string) (string, bool) {
		normalized := strings.ToLower(textutil.StripDiacritics(comment))
		idx := strings.Index(normalized, marker)
		if idx < 0 {
			return "", false
		}
		tail := normalized[idx+len(marker):]
		tail = strings.TrimLeft(tail, markerSeparators)
		return textutil.TitleCase(tail), true
	}
}

// fromTrailingTokens is the weakest heuristic: assume the comment ends
// with a "First Last" name and take the last two tokens of the original
// (non-normalized) comment.
func fromTrailingTokens(comment string) (string, bool) {
	tokens := strings.Fields(comment)
	if len(tokens) == 0 {
		return "", false
	}
	start := len(tokens) - 2
	if start < 0 {
		start = 0
	}
	return textutil.TitleCase(strings.Join(tokens[start:], " ")), true
}
