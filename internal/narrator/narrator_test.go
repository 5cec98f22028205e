// file: internal/narrator/narrator_test.go
// version: 1.0.0
// guid: 4b8c1e6f-3a9d-4c2b-8e5f-7a0d3b6c9e2f

package narrator_test

import (
	"testing"

	"github.com/audiobiblio/tagsuggest/internal/narrator"
)

func TestFromComment(t *testing.T) {
	cases := []struct {
		name    string
		comment string
		want    string
	}{
		{"czech colon label", "Čte: Jan Novák", "Jan Novak"},
		{"english colon label", "Narrator: John Smith", "John Smith"},
		{"colon wins over marker", "Read by: Jane Doe", "Jane Doe"},
		{"cte marker no colon", "cte Petr", "Petr"},
		{"cte marker with hyphen", "čte - Petr Narozny", "Petr Narozny"},
		{"read by marker", "read by David Attenborough", "David Attenborough"},
		{"read by uppercase", "READ BY DAVID SMITH", "David Smith"},
		{"trailing name fallback", "nahrano v roce 1998 Jan Kacer", "Jan Kacer"},
		{"single token fallback", "Werich", "Werich"},
		{"empty comment", "", ""},
		{"whitespace only", "   ", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := narrator.FromComment(c.comment)
			if got != c.want {
				t.Errorf("FromComment(%q): got %q, want %q", c.comment, got, c.want)
			}
		})
	}
}

func TestFromCommentFirstColonOnly(t *testing.T) {
	// Everything after the FIRST colon is the value, even if it contains
	// more colons.
	got := narrator.FromComment("cte: jan: novak")
	if got != "Jan: Novak" {
		t.Errorf("got %q, want %q", got, "Jan: Novak")
	}
}

func TestFromCommentMarkerBeatsFallback(t *testing.T) {
	// The "cte" marker mid-string must win over the trailing-tokens rule.
	got := narrator.FromComment("namluveno 1999 cte karel hoger")
	if got != "Karel Hoger" {
		t.Errorf("got %q, want %q", got, "Karel Hoger")
	}
}
