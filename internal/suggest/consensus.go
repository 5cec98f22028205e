// file: internal/suggest/consensus.go
// version: 1.0.0
// guid: 7c2d9f4e-1b8a-4c6f-9e3d-2a5b8c1f7d4e

package suggest

import (
	"strings"

	"github.com/audiobiblio/tagsuggest/internal/language"
	"github.com/audiobiblio/tagsuggest/internal/textutil"
)

// BuildConsensus derives folder-wide author, language, and genre from
// the per-file records. Empty tag values count as absent and never win
// a vote; an all-empty folder yields an empty author.
func BuildConsensus(records []FileTagRecord) FolderConsensus {
	comments := make([]string, 0, len(records))
	for _, rec := range records {
		comments = append(comments, rec.Comment)
	}
	lang := language.Infer(comments)
	return FolderConsensus{
		Author:   consensusAuthor(records),
		Language: lang,
		Genre:    language.GenreFor(lang),
	}
}

// consensusAuthor picks the most frequent non-empty Artist tag across
// the folder. Values are tallied verbatim, so case and diacritic
// variants stay separate buckets; only the winner is title-cased. Ties
// go to the value seen first.
func consensusAuthor(records []FileTagRecord) string {
	counts := make(map[string]int)
	var seen []string
	for _, rec := range records {
		v := strings.TrimSpace(rec.Artist)
		if v == "" {
			continue
		}
		if _, ok := counts[v]; !ok {
			seen = append(seen, v)
		}
		counts[v]++
	}
	best := ""
	bestCount := 0
	for _, v := range seen {
		if counts[v] > bestCount {
			best = v
			bestCount = counts[v]
		}
	}
	return textutil.TitleCase(best)
}
