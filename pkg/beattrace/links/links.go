// Package links builds streaming platform URLs for matched tracks.
package links

import (
	"net/url"
	"strings"

	"github.com/beattrace/beattrace/pkg/beattrace/catalog"
	"github.com/beattrace/beattrace/pkg/models"
)

const (
	spotifySearch = "https://open.spotify.com/search/"
	appleSearch   = "https://music.apple.com/search?term="
	youtubeSearch = "https://www.youtube.com/results?search_query="

	spotifyTrack = "https://open.spotify.com/track/"
	appleTrack   = "https://music.apple.com/us/song/"
	youtubeWatch = "https://www.youtube.com/watch?v="
)

// Search builds search-query links for a track known only by name.
func Search(title, artist string) map[string]string {
	term := url.QueryEscape(strings.TrimSpace(title + " " + artist))
	return map[string]string{
		models.PlatformSpotify: spotifySearch + term,
		models.PlatformApple:   appleSearch + term,
		models.PlatformYouTube: youtubeSearch + term,
	}
}

// ForEntry builds links for a catalog entry, preferring direct track URLs
// for any platform whose canonical id is known.
func ForEntry(e catalog.Entry) map[string]string {
	out := Search(e.Title, e.Artist)
	if e.SpotifyID != "" {
		out[models.PlatformSpotify] = spotifyTrack + e.SpotifyID
	}
	if e.AppleID != "" {
		out[models.PlatformApple] = appleTrack + e.AppleID
	}
	if e.YouTubeID != "" {
		out[models.PlatformYouTube] = youtubeWatch + e.YouTubeID
	}
	return out
}
