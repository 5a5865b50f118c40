package catalog

import "testing"

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "plain title unchanged",
			title: "Blinding Lights",
			want:  "blinding lights",
		},
		{
			name:  "remix parenthetical stripped",
			title: "Blinding Lights (Major Lazer Remix)",
			want:  "blinding lights",
		},
		{
			name:  "featured artist stripped",
			title: "Stay (feat. Justin Bieber)",
			want:  "stay",
		},
		{
			name:  "soundtrack origin stripped",
			title: "Tum Hi Ho (From \"Aashiqui 2\")",
			want:  "tum hi ho",
		},
		{
			name:  "dash remaster stripped",
			title: "Bohemian Rhapsody - 2011 Remaster",
			want:  "bohemian rhapsody",
		},
		{
			name:  "slowed reverb suffix stripped",
			title: "After Dark - slowed + reverb",
			want:  "after dark",
		},
		{
			name:  "punctuation removed",
			title: "Don't Stop Me Now!",
			want:  "dont stop me now",
		},
		{
			name:  "whitespace collapsed",
			title: "  Some   Song  ",
			want:  "some song",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeTitle(tt.title); got != tt.want {
				t.Errorf("normalizeTitle(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestDedupe(t *testing.T) {
	candidates := []Candidate{
		{ID: "1", Title: "Kesariya", Artist: "Arijit Singh"},
		{ID: "2", Title: "Kesariya (Lofi Version)", Artist: "Arijit Singh"},
		{ID: "1", Title: "Kesariya", Artist: "Arijit Singh"},
		{ID: "3", Title: "Apna Bana Le", Artist: "Arijit Singh"},
	}

	got := dedupe(candidates)

	if len(got) != 2 {
		t.Fatalf("dedupe() returned %d candidates, want 2", len(got))
	}
	if got[0].ID != "1" || got[1].ID != "3" {
		t.Errorf("dedupe() kept IDs [%s, %s], want [1, 3] preserving order", got[0].ID, got[1].ID)
	}
}

func TestDedupeEmpty(t *testing.T) {
	if got := dedupe(nil); len(got) != 0 {
		t.Errorf("dedupe(nil) returned %d candidates, want 0", len(got))
	}
}
