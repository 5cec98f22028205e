// file: internal/suggest/builder_test.go
// version: 1.0.0
// guid: 5e1c8a3d-7f4b-4d2e-9a6c-3b8f1d5e7a2c

package suggest

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []FileTagRecord {
	return []FileTagRecord{
		{
			Path:    "/books/karel/02 - Druhá kapitola.mp3",
			Title:   "druha",
			Artist:  "karel čapek",
			Comment: "Čte: Jan Novák",
			Raw:     map[string]string{"Year": "1937"},
		},
		{
			Path:    "/books/karel/01 - První kapitola.mp3",
			Title:   "prvni",
			Artist:  "karel čapek",
			Comment: "Čte: Jan Novák",
			Raw:     map[string]string{"Year": "1937", "Translator": "Josef Dvořák"},
		},
		{
			Path:    "/books/karel/10 - Závěr.mp3",
			Artist:  "K. Capek",
			Comment: "uvod autora",
			Raw:     map[string]string{},
		},
	}
}

func TestBuildFolderSuggestion(t *testing.T) {
	got := BuildFolderSuggestion("/books/karel", sampleRecords(), nil, BuildOptions{})

	require.Len(t, got.Files, 3)
	assert.Equal(t, "filename", got.OrderSource)
	assert.Equal(t, "Karel Capek", got.Consensus.Author)
	assert.Equal(t, "cz", got.Consensus.Language)
	assert.Equal(t, "audiokniha", got.Consensus.Genre)

	first := got.Files[0]
	assert.Equal(t, "/books/karel/01 - První kapitola.mp3", first.Path)
	assert.Equal(t, "Prvni kapitola", first.Suggested.Title)
	assert.Equal(t, "Karel Capek", first.Suggested.Artist)
	assert.Equal(t, "Karel Capek", first.Suggested.AlbumArtist)
	assert.Equal(t, "Jan Novak", first.Suggested.Performer)
	assert.Equal(t, "1", first.Suggested.Track)
	assert.Equal(t, "1937", first.Suggested.Date)
	assert.Equal(t, "Josef Dvorak", first.Suggested.Translator)

	last := got.Files[2]
	assert.Equal(t, "Zaver", last.Suggested.Title)
	assert.Equal(t, "3", last.Suggested.Track)
	assert.Equal(t, "", last.Suggested.Date)
}

func TestBuildFolderSuggestionPlaylistOrder(t *testing.T) {
	playlist := []string{"10 - Závěr.mp3", "02 - Druhá kapitola.mp3", "01 - První kapitola.mp3"}
	got := BuildFolderSuggestion("/books/karel", sampleRecords(), playlist, BuildOptions{})

	if got.OrderSource != "playlist" {
		t.Fatalf("OrderSource = %q, want %q", got.OrderSource, "playlist")
	}
	if got.Files[0].Path != "/books/karel/10 - Závěr.mp3" {
		t.Errorf("first file = %q, want playlist leader", got.Files[0].Path)
	}
	if got.Files[0].Suggested.Track != "1" {
		t.Errorf("Track = %q, want %q", got.Files[0].Suggested.Track, "1")
	}
}

func TestBuildFolderSuggestionPermutation(t *testing.T) {
	base := BuildFolderSuggestion("/books/karel", sampleRecords(), nil, BuildOptions{})

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		records := sampleRecords()
		rng.Shuffle(len(records), func(a, b int) {
			records[a], records[b] = records[b], records[a]
		})
		got := BuildFolderSuggestion("/books/karel", records, nil, BuildOptions{})
		assert.Equal(t, base, got, "shuffle %d", i)
	}
}

func TestBuildFolderSuggestionDefaultGenreOverride(t *testing.T) {
	records := []FileTagRecord{
		{Path: "/books/x/a.mp3", Comment: "no markers here"},
	}
	got := BuildFolderSuggestion("/books/x", records, nil, BuildOptions{DefaultGenre: "mluvené slovo"})
	if got.Consensus.Genre != "mluvené slovo" {
		t.Errorf("Genre = %q, want override", got.Consensus.Genre)
	}

	czech := BuildFolderSuggestion("/books/karel", sampleRecords(), nil, BuildOptions{DefaultGenre: "mluvené slovo"})
	if czech.Consensus.Genre != "audiokniha" {
		t.Errorf("Genre = %q, override must not shadow an inferred language", czech.Consensus.Genre)
	}
}

func TestSuggestDateFallbackChain(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]string
		want string
	}{
		{"positive year", map[string]string{"Year": "1989", "CreateDate": "2020:01:01"}, "1989"},
		{"zero year falls through", map[string]string{"Year": "0", "CreateDate": "2020:01:01"}, "2020:01:01"},
		{"non-numeric year falls through", map[string]string{"Year": "unknown", "DateTimeOriginal": "1999:05:05"}, "1999:05:05"},
		{"create date before original", map[string]string{"CreateDate": "2020:01:01", "DateTimeOriginal": "1999:05:05"}, "2020:01:01"},
		{"nothing", map[string]string{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := suggestDate(FileTagRecord{Raw: tt.raw})
			if got != tt.want {
				t.Errorf("suggestDate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTitleFromFilename(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/x/01 - První kapitola.mp3", "Prvni kapitola"},
		{"/x/05_uvodni_slovo.m4b", "uvodni slovo"},
		{"/x/intro.mp3", "intro"},
		{"/x/12.mp3", ""},
	}
	for _, tt := range tests {
		if got := titleFromFilename(tt.path); got != tt.want {
			t.Errorf("titleFromFilename(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
