package catalog

import (
	"testing"
)

func TestSeedShape(t *testing.T) {
	entries := Seed()

	if len(entries) != 13 {
		t.Fatalf("seed has %d entries, want 13", len(entries))
	}

	seen := make(map[string]bool)
	genres := make(map[string]bool)
	for _, e := range entries {
		if e.ID == "" || e.Title == "" || e.Artist == "" || e.Genre == "" {
			t.Errorf("entry %+v missing required fields", e)
		}
		if seen[e.ID] {
			t.Errorf("duplicate entry id %s", e.ID)
		}
		seen[e.ID] = true
		genres[e.Genre] = true
	}

	for _, g := range AllGenres {
		if !genres[g] {
			t.Errorf("genre %s has no seed entries", g)
		}
	}
}

func TestByGenresPreservesOrder(t *testing.T) {
	c := NewCatalog(Seed())

	entries := c.ByGenres([]string{GenreHipHop, GenrePop})

	want := []string{"hiphop-1", "hiphop-2", "hiphop-3", "hiphop-4", "pop-1", "pop-2"}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i, e := range entries {
		if e.ID != want[i] {
			t.Errorf("position %d = %s, want %s", i, e.ID, want[i])
		}
	}
}

func TestByGenresUnknownGenre(t *testing.T) {
	c := NewCatalog(Seed())

	if got := c.ByGenres([]string{"zydeco"}); len(got) != 0 {
		t.Errorf("got %d entries for unknown genre, want 0", len(got))
	}
}
