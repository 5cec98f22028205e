// file: internal/extractor/extractor.go
// version: 1.0.0
// guid: 4b9e2c7a-8d1f-4a5c-b6e3-1f7d9a4c2e8b

// Package extractor reads stored tags from audio files and converts
// them into the flat records the suggestion pipeline consumes.
package extractor

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dhowden/tag"

	"github.com/audiobiblio/tagsuggest/internal/suggest"
)

// performerKeys lists the frames and atoms taggers use for a narrator.
// Availability varies by format and tagging tool; this is best-effort.
var performerKeys = []string{"TXXX:NARRATOR", "TXXX:Narrator", "NARRATOR", "Narrator", "©nrt", "TPE3"}

// translatorKeys lists the custom frames taggers use for a translator.
var translatorKeys = []string{"TXXX:TRANSLATOR", "TXXX:Translator", "TRANSLATOR", "Translator"}

// ReadFile extracts the stored tags of one audio file. A file whose tag
// header cannot be parsed still yields a record with the path set, so
// the pipeline can suggest values from the filename alone; only I/O
// failures return an error.
func ReadFile(path string) (suggest.FileTagRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return suggest.FileTagRecord{Path: path}, fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return suggest.FileTagRecord{Path: path, Raw: map[string]string{}}, nil
	}

	tags := map[string]string{
		"Title":       m.Title(),
		"Artist":      m.Artist(),
		"AlbumArtist": m.AlbumArtist(),
		"Genre":       m.Genre(),
		"Comment":     m.Comment(),
	}
	if track, _ := m.Track(); track > 0 {
		tags["Track"] = strconv.Itoa(track)
	}
	if year := m.Year(); year > 0 {
		tags["Year"] = strconv.Itoa(year)
	}
	if v := rawString(m, performerKeys); v != "" {
		tags["Performer"] = v
	}
	if v := rawString(m, translatorKeys); v != "" {
		tags["Translator"] = v
	}
	for _, key := range []string{"CreateDate", "DateTimeOriginal", "Date"} {
		if v := rawString(m, []string{key}); v != "" {
			tags[key] = v
		}
	}

	return suggest.RecordFromMap(path, tags), nil
}

// ReadFolder extracts records for every path, in the given order.
// Unreadable files are skipped with an error collected per path. A
// non-nil progress callback is invoked once per file, read or not.
func ReadFolder(paths []string, progress func()) ([]suggest.FileTagRecord, []error) {
	records := make([]suggest.FileTagRecord, 0, len(paths))
	var errs []error
	for _, p := range paths {
		rec, err := ReadFile(p)
		if progress != nil {
			progress()
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		records = append(records, rec)
	}
	return records, errs
}

// rawString returns the first non-empty string value among the raw tag
// keys.
func rawString(m tag.Metadata, keys []string) string {
	raw := m.Raw()
	for _, key := range keys {
		if v, ok := raw[key]; ok {
			if s, sok := v.(string); sok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}
