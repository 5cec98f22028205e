// file: internal/suggest/diff.go
// version: 1.0.0
// guid: 9d4a2b7f-6e3c-4f8a-b1d5-8c2e7a9f4b6d

package suggest

import "strings"

// DiffFields is the fixed, ordered field set considered when comparing
// current against suggested values.
var DiffFields = []string{
	"Title",
	"Artist",
	"AlbumArtist",
	"Performer",
	"Genre",
	"Track",
	"Date",
	"Translator",
}

// NoChange marks a file whose suggested values all match the stored
// ones after whitespace trimming.
const NoChange = "no change"

// ChangedFields returns the names of fields whose suggested value
// differs from the current one, compared with surrounding whitespace
// trimmed. Order follows DiffFields. An empty result means NoChange.
func ChangedFields(fs FileSuggestion) []string {
	var changed []string
	for _, name := range DiffFields {
		cur := strings.TrimSpace(fs.Current.Field(name))
		sug := strings.TrimSpace(fs.Suggested.Field(name))
		if cur != sug {
			changed = append(changed, name)
		}
	}
	return changed
}
