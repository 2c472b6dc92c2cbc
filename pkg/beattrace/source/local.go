// Package source provides the match source adapters tried by the
// pipeline's fallback orchestrator.
package source

import (
	"context"
	"math"
	"strings"

	"github.com/beattrace/beattrace/pkg/beattrace/catalog"
	"github.com/beattrace/beattrace/pkg/beattrace/links"
	"github.com/beattrace/beattrace/pkg/models"
)

// genreKeywords routes file names to catalog genres. Rule order is
// load-bearing: the first matching keyword wins.
var genreKeywords = []struct {
	keywords []string
	genre    string
}{
	{[]string{"afro", "dancehall"}, catalog.GenreAfrobeats},
	{[]string{"trap", "hip", "rap"}, catalog.GenreHipHop},
	{[]string{"pop", "edm", "electro"}, catalog.GenrePop},
	{[]string{"rnb", "soul", "piano"}, catalog.GenreRnB},
	{[]string{"latin", "reggaeton"}, catalog.GenreLatin},
}

// LocalCatalog selects matches deterministically from the read-only
// catalog. It never fails and never returns malformed records: identical
// inputs always produce identical output, record for record.
type LocalCatalog struct {
	catalog *catalog.Catalog
}

func NewLocal(cat *catalog.Catalog) *LocalCatalog {
	return &LocalCatalog{catalog: cat}
}

func (l *LocalCatalog) Name() string { return "catalog" }

func (l *LocalCatalog) Lookup(_ context.Context, fp models.Fingerprint, fileName string) ([]models.MatchRecord, error) {
	fpValue := fp.LeadingValue()

	entries := l.catalog.ByGenres(genreHints(fileName, fpValue))
	if len(entries) == 0 {
		entries = l.offsetFallback(fpValue)
	}

	n := resultCount(fpValue, fileName, fp.DurationSeconds)
	if len(entries) > n {
		entries = entries[:n]
	}

	records := make([]models.MatchRecord, 0, len(entries))
	for i, e := range entries {
		records = append(records, models.MatchRecord{
			ID:             e.ID,
			Score:          matchScore(i, len(fileName), fp.DurationSeconds, fpValue),
			Title:          e.Title,
			Artist:         e.Artist,
			Album:          e.Album,
			ReleaseDate:    e.ReleaseYear,
			StreamingLinks: links.ForEntry(e),
		})
	}
	return records, nil
}

// genreHints maps the file name to a genre set via keyword matching,
// falling back to one or two pseudo-genres derived from the fingerprint.
func genreHints(fileName string, fpValue uint64) []string {
	lower := strings.ToLower(fileName)
	for _, rule := range genreKeywords {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return []string{rule.genre}
			}
		}
	}

	n := uint64(len(catalog.AllGenres))
	genres := []string{catalog.AllGenres[fpValue%n]}
	if second := catalog.AllGenres[(fpValue+2)%n]; second != genres[0] {
		genres = append(genres, second)
	}
	return genres
}

// offsetFallback picks entries at fixed offsets from the fingerprint
// value when the genre filter comes up empty. Duplicate offsets collapse.
func (l *LocalCatalog) offsetFallback(fpValue uint64) []catalog.Entry {
	size := uint64(l.catalog.Len())
	if size == 0 {
		return nil
	}

	seen := make(map[uint64]bool, 3)
	var out []catalog.Entry
	for _, offset := range []uint64{0, 3, 7} {
		idx := (fpValue + offset) % size
		if seen[idx] {
			continue
		}
		seen[idx] = true
		out = append(out, l.catalog.At(int(idx)))
	}
	return out
}

// resultCount bounds the result set to 1-4 entries.
func resultCount(fpValue uint64, fileName string, durationSeconds int) int {
	seed := fpValue + uint64(len(fileName)) + uint64(durationSeconds)
	return 1 + int(seed%4)
}

// matchScore computes the confidence for the entry at resultIndex. The
// arithmetic, clamping and rounding order are fixed; golden tests depend
// on the exact values.
func matchScore(resultIndex, fileNameLen, durationSeconds int, fpValue uint64) float64 {
	base := 0.75 + 0.05*float64(resultIndex)
	nameInfluence := 0.01 * float64(fileNameLen%10)

	durationTenths := int(math.Floor(float64(durationSeconds) / 60.0 * 10))
	if durationTenths > 5 {
		durationTenths = 5
	}
	durationInfluence := 0.01 * float64(durationTenths)

	variance := 0.01 * float64((fpValue+uint64(resultIndex))%10)

	score := base - nameInfluence - durationInfluence + variance
	if score > 0.98 {
		score = 0.98
	}
	if score < 0.70 {
		score = 0.70
	}
	return math.Round(score*100) / 100
}
