package models

import "strconv"

// Platform keys used in MatchRecord.StreamingLinks. The map is open:
// additional platforms may appear without a schema change.
const (
	PlatformSpotify = "spotify"
	PlatformApple   = "apple"
	PlatformYouTube = "youtube"
)

// AudioAsset is the caller-supplied input to an analysis. The pipeline
// treats it as read-only and never inspects MIME type or size policy;
// that validation belongs to the caller.
type AudioAsset struct {
	Content   []byte
	FileName  string
	MediaType string
	SizeBytes int64
}

// Fingerprint is the lookup key derived from an asset. The ID is a
// fixed-length hex proxy key, stable for the same file name and size,
// with no relationship to the audio's acoustic content.
type Fingerprint struct {
	ID              string
	DurationSeconds int
}

// LeadingValue interprets the first 8 hex characters of the fingerprint
// as an integer. Seeds deterministic catalog selection.
func (f Fingerprint) LeadingValue() uint64 {
	if len(f.ID) < 8 {
		return 0
	}
	v, err := strconv.ParseUint(f.ID[:8], 16, 64)
	if err != nil {
		return 0
	}
	return v
}

// MatchRecord is one normalized candidate track match.
type MatchRecord struct {
	ID             string            `json:"id"`
	Score          float64           `json:"score"`
	Title          string            `json:"title"`
	Artist         string            `json:"artist"`
	Album          string            `json:"album,omitempty"`
	ReleaseDate    string            `json:"releaseDate,omitempty"`
	StreamingLinks map[string]string `json:"streamingLinks,omitempty"`
}
