// file: internal/suggest/types_test.go
// version: 1.0.0
// guid: e2a8d5f7-4c1b-4e9a-b3d6-7f5c2a8e1b9d

package suggest

import "testing"

func TestRecordFromMap(t *testing.T) {
	rec := RecordFromMap("/x/a.mp3", map[string]string{
		"TITLE":       "zaver",
		"Artist":      "Karel Capek",
		"Albumartist": "Karel Capek",
		"TrackNumber": "3",
		"Year":        "1937",
		"COMMENT":     "Cte: Jan Novak",
	})

	if rec.Path != "/x/a.mp3" {
		t.Errorf("Path = %q", rec.Path)
	}
	if rec.Title != "zaver" {
		t.Errorf("Title = %q, want %q", rec.Title, "zaver")
	}
	if rec.AlbumArtist != "Karel Capek" {
		t.Errorf("AlbumArtist = %q", rec.AlbumArtist)
	}
	if rec.Track != "3" {
		t.Errorf("Track = %q, want %q", rec.Track, "3")
	}
	if rec.Date != "1937" {
		t.Errorf("Date = %q, want %q", rec.Date, "1937")
	}
	if rec.Comment != "Cte: Jan Novak" {
		t.Errorf("Comment = %q", rec.Comment)
	}
}

func TestRecordFromMapPrefersCanonicalKey(t *testing.T) {
	rec := RecordFromMap("/x/a.mp3", map[string]string{
		"Title": "canonical",
		"TITLE": "upper",
	})
	if rec.Title != "canonical" {
		t.Errorf("Title = %q, want %q", rec.Title, "canonical")
	}
}

func TestRecordFromMapNilTags(t *testing.T) {
	rec := RecordFromMap("/x/a.mp3", nil)
	if rec.Raw == nil {
		t.Fatal("Raw map not initialized")
	}
	if rec.Title != "" || rec.Artist != "" {
		t.Errorf("expected empty fields, got %+v", rec)
	}
}

func TestConsensusAuthorTieBreak(t *testing.T) {
	records := []FileTagRecord{
		{Artist: "bozena nemcova"},
		{Artist: "Karel Capek"},
		{Artist: "Karel Capek"},
		{Artist: "bozena nemcova"},
	}
	if got := consensusAuthor(records); got != "Bozena Nemcova" {
		t.Errorf("consensusAuthor() = %q, want first-seen winner on tie", got)
	}
}

func TestConsensusAuthorCountsRawValues(t *testing.T) {
	// Case variants of the same name are separate buckets and must not
	// pool their votes against the true plurality winner.
	records := []FileTagRecord{
		{Artist: "Jan Novak"},
		{Artist: "Jan Novak"},
		{Artist: "bozena nemcova"},
		{Artist: "Bozena nemcova"},
		{Artist: "bozena Nemcova"},
	}
	if got := consensusAuthor(records); got != "Jan Novak" {
		t.Errorf("consensusAuthor() = %q, want %q", got, "Jan Novak")
	}
}

func TestConsensusAuthorTitleCasesWinnerOnly(t *testing.T) {
	records := []FileTagRecord{
		{Artist: "karel čapek"},
		{Artist: "karel čapek"},
	}
	if got := consensusAuthor(records); got != "Karel Capek" {
		t.Errorf("consensusAuthor() = %q, want %q", got, "Karel Capek")
	}
}

func TestConsensusAuthorIgnoresEmpty(t *testing.T) {
	records := []FileTagRecord{{}, {Artist: "  "}, {Artist: "jan werich"}}
	if got := consensusAuthor(records); got != "Jan Werich" {
		t.Errorf("consensusAuthor() = %q, want %q", got, "Jan Werich")
	}
}
