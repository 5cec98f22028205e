// file: internal/suggest/types.go
// version: 1.0.0
// guid: 1a6e3c8d-9b2f-4e5a-8c7d-4f1b0a9e6d3c

package suggest

import "strings"

// FileTagRecord is one audio file's currently-stored metadata as
// discovered by the extraction collaborator. Records are immutable once
// loaded; missing tags are empty strings, never errors.
type FileTagRecord struct {
	Path        string
	Title       string
	Artist      string
	AlbumArtist string
	Performer   string
	Genre       string
	Track       string
	Date        string
	Comment     string
	// Raw preserves the full tag mapping, including vendor-specific and
	// case-variant keys (CreateDate, DateTimeOriginal, Translator, …).
	Raw map[string]string
}

// RecordFromMap builds a FileTagRecord from a raw tag mapping, resolving
// the case-variant key spellings different taggers produce. The mapping
// is kept as the record's Raw map.
func RecordFromMap(path string, tags map[string]string) FileTagRecord {
	if tags == nil {
		tags = make(map[string]string)
	}
	return FileTagRecord{
		Path:        path,
		Title:       firstTag(tags, "Title", "TITLE"),
		Artist:      firstTag(tags, "Artist", "ARTIST"),
		AlbumArtist: firstTag(tags, "AlbumArtist", "Albumartist", "ALBUMARTIST"),
		Performer:   firstTag(tags, "Performer", "PERFORMER"),
		Genre:       firstTag(tags, "Genre", "GENRE"),
		Track:       firstTag(tags, "Track", "TrackNumber", "TRACKNUMBER"),
		Date:        firstTag(tags, "Date", "Year", "DATE", "YEAR"),
		Comment:     firstTag(tags, "Comment", "COMMENT"),
		Raw:         tags,
	}
}

// firstTag returns the first non-empty value among the given keys.
func firstTag(tags map[string]string, keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(tags[k]); v != "" {
			return v
		}
	}
	return ""
}

// FolderConsensus holds folder-wide values derived once from all
// per-file records and never mutated afterwards.
type FolderConsensus struct {
	Author   string `json:"author"`
	Language string `json:"language"`
	Genre    string `json:"genre"`
}

// TagBlock is the fixed field set carried in both the current and
// suggested halves of a FileSuggestion.
type TagBlock struct {
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	AlbumArtist string `json:"albumartist"`
	Performer   string `json:"performer"`
	Genre       string `json:"genre"`
	Track       string `json:"track"`
	Date        string `json:"date"`
	Translator  string `json:"translator"`
}

// Field returns the named field's value. Names follow DiffFields.
func (b TagBlock) Field(name string) string {
	switch name {
	case "Title":
		return b.Title
	case "Artist":
		return b.Artist
	case "AlbumArtist":
		return b.AlbumArtist
	case "Performer":
		return b.Performer
	case "Genre":
		return b.Genre
	case "Track":
		return b.Track
	case "Date":
		return b.Date
	case "Translator":
		return b.Translator
	}
	return ""
}

// FileSuggestion is the per-file output: the file's current values next
// to the suggested replacements.
type FileSuggestion struct {
	Path      string   `json:"file"`
	Current   TagBlock `json:"current"`
	Suggested TagBlock `json:"suggested"`
}

// FolderSuggestion aggregates one folder's result. Files is a
// permutation of the input record set in resolved track order.
type FolderSuggestion struct {
	Folder      string           `json:"folder"`
	Consensus   FolderConsensus  `json:"consensus"`
	OrderSource string           `json:"order_source"`
	Files       []FileSuggestion `json:"files"`
}
