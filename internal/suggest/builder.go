// file: internal/suggest/builder.go
// version: 1.0.0
// guid: 3f8b1d6a-5c4e-4a9b-8d2f-6e1c9a7b3f5d

package suggest

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/audiobiblio/tagsuggest/internal/language"
	"github.com/audiobiblio/tagsuggest/internal/narrator"
	"github.com/audiobiblio/tagsuggest/internal/textutil"
	"github.com/audiobiblio/tagsuggest/internal/trackorder"
)

// reTitlePrefix matches the leading track number and its separators at
// the start of a filename, which never belong in a title.
var reTitlePrefix = regexp.MustCompile(`^\s*\d+[\s\-_.]*`)

// BuildOptions tunes suggestion assembly.
type BuildOptions struct {
	// DefaultGenre replaces the built-in fallback genre used when no
	// language could be inferred. Empty keeps the built-in value.
	DefaultGenre string
}

// BuildFolderSuggestion runs the full pipeline for one folder: derive
// the consensus, resolve track order, and assemble one suggestion per
// file. Records may arrive in any order; the output Files slice is a
// permutation of the input in resolved order. Neither the records nor
// any file on disk is modified.
func BuildFolderSuggestion(folder string, records []FileTagRecord, playlistEntries []string, opts BuildOptions) FolderSuggestion {
	consensus := BuildConsensus(records)
	if consensus.Language == language.Undetermined && opts.DefaultGenre != "" {
		consensus.Genre = opts.DefaultGenre
	}

	byName := make(map[string][]FileTagRecord, len(records))
	names := make([]string, 0, len(records))
	for _, rec := range records {
		name := filepath.Base(rec.Path)
		if _, ok := byName[name]; !ok {
			names = append(names, name)
		}
		byName[name] = append(byName[name], rec)
	}

	ordered, source := trackorder.Resolve(names, playlistEntries)

	out := FolderSuggestion{
		Folder:      folder,
		Consensus:   consensus,
		OrderSource: source,
		Files:       make([]FileSuggestion, 0, len(records)),
	}
	for _, name := range ordered {
		for _, rec := range byName[name] {
			out.Files = append(out.Files, buildFileSuggestion(rec, consensus, len(out.Files)+1))
		}
	}
	return out
}

// buildFileSuggestion assembles the suggested tag block for one file at
// the given 1-based track position.
func buildFileSuggestion(rec FileTagRecord, consensus FolderConsensus, position int) FileSuggestion {
	artist := consensus.Author
	if artist == "" {
		artist = textutil.TitleCase(rec.Artist)
	}

	suggested := TagBlock{
		Title:       titleFromFilename(rec.Path),
		Artist:      artist,
		AlbumArtist: artist,
		Performer:   narrator.FromComment(rec.Comment),
		Genre:       consensus.Genre,
		Track:       strconv.Itoa(position),
		Date:        suggestDate(rec),
		Translator:  firstTag(rec.Raw, "Translator", "TRANSLATOR"),
	}

	return FileSuggestion{
		Path:      rec.Path,
		Current:   currentBlock(rec),
		Suggested: stripBlock(suggested),
	}
}

// currentBlock snapshots the record's stored values for diffing.
func currentBlock(rec FileTagRecord) TagBlock {
	return TagBlock{
		Title:       rec.Title,
		Artist:      rec.Artist,
		AlbumArtist: rec.AlbumArtist,
		Performer:   rec.Performer,
		Genre:       rec.Genre,
		Track:       rec.Track,
		Date:        rec.Date,
		Translator:  firstTag(rec.Raw, "Translator", "TRANSLATOR"),
	}
}

// titleFromFilename derives a display title from the file's basename:
// extension off, leading track number off, underscores to spaces.
func titleFromFilename(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = reTitlePrefix.ReplaceAllString(name, "")
	name = strings.ReplaceAll(name, "_", " ")
	return strings.TrimSpace(textutil.StripDiacritics(name))
}

// suggestDate walks the date fallback chain: a positive integer Year
// tag wins, then CreateDate, then DateTimeOriginal, then empty.
func suggestDate(rec FileTagRecord) string {
	if y := firstTag(rec.Raw, "Year", "YEAR"); y != "" {
		if n, err := strconv.Atoi(y); err == nil && n > 0 {
			return strconv.Itoa(n)
		}
	}
	if v := firstTag(rec.Raw, "CreateDate"); v != "" {
		return v
	}
	return firstTag(rec.Raw, "DateTimeOriginal")
}

// stripBlock strips diacritics from the text fields of a suggested
// block. This is the single normalization point for suggested output;
// Track and Date stay untouched.
func stripBlock(b TagBlock) TagBlock {
	b.Title = textutil.StripDiacritics(b.Title)
	b.Artist = textutil.StripDiacritics(b.Artist)
	b.AlbumArtist = textutil.StripDiacritics(b.AlbumArtist)
	b.Performer = textutil.StripDiacritics(b.Performer)
	b.Genre = textutil.StripDiacritics(b.Genre)
	b.Translator = textutil.StripDiacritics(b.Translator)
	return b
}
