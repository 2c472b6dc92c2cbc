package source

import (
	"strings"
	"testing"
)

func TestNormalizeFullRecord(t *testing.T) {
	results := []lookupResult{
		{
			ID:    "result-1",
			Score: 0.912345,
			Recordings: []recording{
				{
					ID:      "rec-abc",
					Title:   "Essence",
					Artists: []artist{{Name: "Wizkid"}},
					Releases: []release{
						{Title: "Made in Lagos", Date: &releaseDate{Year: 2020}},
					},
				},
			},
		},
	}

	records := normalizeResults(results)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}

	r := records[0]
	if r.ID != "rec-abc" {
		t.Errorf("ID = %s, want rec-abc", r.ID)
	}
	if r.Score != 0.91 {
		t.Errorf("Score = %v, want 0.91", r.Score)
	}
	if r.Title != "Essence" || r.Artist != "Wizkid" {
		t.Errorf("Title/Artist = %s/%s", r.Title, r.Artist)
	}
	if r.Album != "Made in Lagos" || r.ReleaseDate != "2020" {
		t.Errorf("Album/ReleaseDate = %s/%s", r.Album, r.ReleaseDate)
	}
	if !strings.Contains(r.StreamingLinks["spotify"], "Essence+Wizkid") {
		t.Errorf("unexpected spotify link %s", r.StreamingLinks["spotify"])
	}
}

func TestNormalizePlaceholders(t *testing.T) {
	results := []lookupResult{
		{Score: 0.8, Recordings: []recording{{}}},
	}

	records := normalizeResults(results)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}

	r := records[0]
	if r.ID != "recording-0" {
		t.Errorf("ID = %s, want recording-0", r.ID)
	}
	if r.Title != UnknownTitle {
		t.Errorf("Title = %s, want %s", r.Title, UnknownTitle)
	}
	if r.Artist != UnknownArtist {
		t.Errorf("Artist = %s, want %s", r.Artist, UnknownArtist)
	}
	if r.Album != UnknownAlbum {
		t.Errorf("Album = %s, want %s", r.Album, UnknownAlbum)
	}
	if r.ReleaseDate != UnknownYear {
		t.Errorf("ReleaseDate = %s, want %s", r.ReleaseDate, UnknownYear)
	}
	if len(r.StreamingLinks) != 3 {
		t.Errorf("got %d streaming links, want 3", len(r.StreamingLinks))
	}
}

func TestNormalizeSkipsRecordsWithoutRecordings(t *testing.T) {
	results := []lookupResult{
		{ID: "no-recordings", Score: 0.9},
		{
			ID:    "has-recording",
			Score: 0.8,
			Recordings: []recording{
				{ID: "rec-1", Title: "Humble", Artists: []artist{{Name: "Kendrick Lamar"}}},
			},
		},
	}

	records := normalizeResults(results)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].ID != "rec-1" {
		t.Errorf("ID = %s, want rec-1", records[0].ID)
	}
}

func TestNormalizeScoreDefaults(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  float64
	}{
		{"zero score", 0, 0.7},
		{"negative score", -0.5, 0.7},
		{"above one", 1.7, 1.0},
		{"rounded", 0.856, 0.86},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := []lookupResult{
				{Score: tt.score, Recordings: []recording{{ID: "r", Title: "t"}}},
			}
			records := normalizeResults(results)
			if len(records) != 1 {
				t.Fatalf("got %d records, want 1", len(records))
			}
			if records[0].Score != tt.want {
				t.Errorf("Score = %v, want %v", records[0].Score, tt.want)
			}
		})
	}
}
