package source

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/beattrace/beattrace/pkg/beattrace/catalog"
	"github.com/beattrace/beattrace/pkg/models"
)

func zeroFingerprint(duration int) models.Fingerprint {
	return models.Fingerprint{ID: strings.Repeat("0", 64), DurationSeconds: duration}
}

func seedLocal(t *testing.T) *LocalCatalog {
	t.Helper()
	return NewLocal(catalog.NewCatalog(catalog.Seed()))
}

func TestLookupRoutesAfrobeats(t *testing.T) {
	l := seedLocal(t)

	records, err := l.Lookup(context.Background(), zeroFingerprint(180), "my_afro_beat.wav")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if len(records) == 0 {
		t.Fatal("expected at least one record")
	}
	for _, r := range records {
		if !strings.HasPrefix(r.ID, "afro-") {
			t.Errorf("record %s is not from the afrobeats subset", r.ID)
		}
	}
}

func TestLookupRoutesHipHop(t *testing.T) {
	l := seedLocal(t)

	records, err := l.Lookup(context.Background(), zeroFingerprint(180), "trap_only.wav")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if len(records) == 0 {
		t.Fatal("expected at least one record")
	}
	for _, r := range records {
		if !strings.HasPrefix(r.ID, "hiphop-") {
			t.Errorf("record %s is not from the hip-hop subset", r.ID)
		}
	}
}

func TestLookupIsPure(t *testing.T) {
	l := seedLocal(t)
	fp := models.Fingerprint{ID: "c0ffee42" + strings.Repeat("0", 56), DurationSeconds: 213}

	first, err := l.Lookup(context.Background(), fp, "unlabeled_beat_v3.mp3")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	second, err := l.Lookup(context.Background(), fp, "unlabeled_beat_v3.mp3")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated lookups differ:\n%v\n%v", first, second)
	}
}

// Golden values: fingerprint value 5, "test.wav" (len 8), 180s. Pseudo
// genres are hip-hop and pop, the count seed is 193 so two records come
// back, and the scores clamp/round to 0.70 and 0.73.
func TestLookupGoldenScores(t *testing.T) {
	l := seedLocal(t)
	fp := models.Fingerprint{ID: "00000005" + strings.Repeat("0", 56), DurationSeconds: 180}

	records, err := l.Lookup(context.Background(), fp, "test.wav")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	wantIDs := []string{"hiphop-1", "hiphop-2"}
	wantScores := []float64{0.70, 0.73}
	for i, r := range records {
		if r.ID != wantIDs[i] {
			t.Errorf("record %d id = %s, want %s", i, r.ID, wantIDs[i])
		}
		if r.Score != wantScores[i] {
			t.Errorf("record %d score = %v, want %v", i, r.Score, wantScores[i])
		}
	}
}

func TestLookupOffsetFallbackNeverEmpty(t *testing.T) {
	// A catalog without hip-hop entries forces the genre filter empty for
	// a hip-hop file name; the offset fallback must still produce 1-4
	// records.
	latinOnly := catalog.NewCatalog(catalog.Seed()[11:])
	l := NewLocal(latinOnly)

	records, err := l.Lookup(context.Background(), zeroFingerprint(180), "trap_beat.wav")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if len(records) < 1 || len(records) > 4 {
		t.Errorf("got %d records, want 1-4", len(records))
	}
}

func TestLookupCountAndScoreBounds(t *testing.T) {
	l := seedLocal(t)

	fileNames := []string{
		"a.wav", "night_drive.mp3", "piano_loop_88bpm.wav", "reggaeton-demo.ogg",
		"EDM Final MASTER (3).mp3", "untitled", "hiphop_sample.flac",
	}
	fingerprints := []string{
		strings.Repeat("0", 64),
		"ffffffff" + strings.Repeat("0", 56),
		"deadbeef" + strings.Repeat("1", 56),
	}
	durations := []int{1, 30, 180, 213, 3600}

	for _, name := range fileNames {
		for _, id := range fingerprints {
			for _, dur := range durations {
				fp := models.Fingerprint{ID: id, DurationSeconds: dur}
				records, err := l.Lookup(context.Background(), fp, name)
				if err != nil {
					t.Fatalf("Lookup(%s) failed: %v", name, err)
				}
				if len(records) < 1 || len(records) > 4 {
					t.Errorf("Lookup(%s, %s, %d) returned %d records, want 1-4", name, id[:8], dur, len(records))
				}
				for _, r := range records {
					if r.Score < 0.70 || r.Score > 0.98 {
						t.Errorf("score %v out of [0.70, 0.98] for %s", r.Score, name)
					}
					if r.Title == "" || r.Artist == "" {
						t.Errorf("record %s missing title or artist", r.ID)
					}
				}
			}
		}
	}
}

func TestLookupStreamingLinks(t *testing.T) {
	l := seedLocal(t)

	// "trap_mix.wav" (len 12) with fingerprint 0: seed 192 gives one
	// record, hiphop-1, which has no platform ids.
	records, err := l.Lookup(context.Background(), zeroFingerprint(180), "trap_mix.wav")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}

	links := records[0].StreamingLinks
	for _, platform := range []string{models.PlatformSpotify, models.PlatformApple, models.PlatformYouTube} {
		if links[platform] == "" {
			t.Errorf("missing %s link", platform)
		}
	}
	if !strings.Contains(links[models.PlatformYouTube], "results?search_query=") {
		t.Errorf("expected a search link for an entry without platform ids, got %s", links[models.PlatformYouTube])
	}
}

func TestLookupDirectLinkForKnownTrack(t *testing.T) {
	// hiphop-2 carries a YouTube id, so its link must be a direct watch
	// URL. Force a two-record hip-hop result as in the golden test.
	l := seedLocal(t)
	fp := models.Fingerprint{ID: "00000005" + strings.Repeat("0", 56), DurationSeconds: 180}

	records, err := l.Lookup(context.Background(), fp, "test.wav")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if got := records[1].StreamingLinks[models.PlatformYouTube]; !strings.Contains(got, "watch?v=") {
		t.Errorf("expected direct YouTube link for %s, got %s", records[1].ID, got)
	}
}

func TestGenreHintsKeywordPrecedence(t *testing.T) {
	tests := []struct {
		fileName string
		want     string
	}{
		{"my_afro_beat.wav", catalog.GenreAfrobeats},
		{"dancehall_riddim.mp3", catalog.GenreAfrobeats},
		{"afro_trap.wav", catalog.GenreAfrobeats}, // afro wins over trap
		{"trap_only.wav", catalog.GenreHipHop},
		{"HipHop-Demo.mp3", catalog.GenreHipHop},
		{"electro_house.wav", catalog.GenrePop},
		{"soul_piano.wav", catalog.GenreRnB},
		{"reggaeton_beat.mp3", catalog.GenreLatin},
	}
	for _, tt := range tests {
		got := genreHints(tt.fileName, 0)
		if len(got) != 1 || got[0] != tt.want {
			t.Errorf("genreHints(%s) = %v, want [%s]", tt.fileName, got, tt.want)
		}
	}
}

func TestGenreHintsPseudoGenres(t *testing.T) {
	// No keyword: one or two genres derived from the fingerprint value.
	got := genreHints("song.wav", 5)
	want := []string{catalog.GenreHipHop, catalog.GenrePop}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("genreHints = %v, want %v", got, want)
	}
}
