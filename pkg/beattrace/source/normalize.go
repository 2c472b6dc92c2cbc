package source

import (
	"fmt"
	"math"
	"strconv"

	"github.com/beattrace/beattrace/pkg/beattrace/links"
	"github.com/beattrace/beattrace/pkg/models"
)

// Placeholder values for metadata the lookup service did not provide.
// Downstream consumers assume title and artist are always present.
const (
	UnknownTitle  = "Título desconocido"
	UnknownArtist = "Artista desconocido"
	UnknownAlbum  = "Álbum desconocido"
	UnknownYear   = "Desconocido"
)

const defaultRemoteScore = 0.7

// normalizeResults maps raw lookup results into canonical match records.
// Results without a recording are skipped; the rest of the batch is still
// processed.
func normalizeResults(results []lookupResult) []models.MatchRecord {
	records := make([]models.MatchRecord, 0, len(results))
	for i, res := range results {
		rec, ok := normalizeResult(res, i)
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	return records
}

func normalizeResult(res lookupResult, index int) (models.MatchRecord, bool) {
	if len(res.Recordings) == 0 {
		return models.MatchRecord{}, false
	}
	r := res.Recordings[0]

	id := r.ID
	if id == "" {
		id = fmt.Sprintf("recording-%d", index)
	}

	score := math.Round(res.Score*100) / 100
	if score <= 0 {
		score = defaultRemoteScore
	}
	if score > 1 {
		score = 1
	}

	var rawArtist string
	if len(r.Artists) > 0 {
		rawArtist = r.Artists[0].Name
	}

	title := r.Title
	if title == "" {
		title = UnknownTitle
	}
	artist := rawArtist
	if artist == "" {
		artist = UnknownArtist
	}

	album := UnknownAlbum
	year := UnknownYear
	if len(r.Releases) > 0 {
		rel := r.Releases[0]
		if rel.Title != "" {
			album = rel.Title
		}
		if rel.Date != nil && rel.Date.Year != 0 {
			year = strconv.Itoa(rel.Date.Year)
		}
	}

	return models.MatchRecord{
		ID:          id,
		Score:       score,
		Title:       title,
		Artist:      artist,
		Album:       album,
		ReleaseDate: year,
		// Links are built from the raw names, not the placeholders.
		StreamingLinks: links.Search(r.Title, rawArtist),
	}, true
}
