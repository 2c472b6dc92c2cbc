package main

import "github.com/beattrace/beattrace/pkg/models"

// AnalyzeResponse is the response for POST /api/analyze.
type AnalyzeResponse struct {
	AnalysisID string               `json:"analysis_id"`
	FileName   string               `json:"file_name"`
	Matches    []models.MatchRecord `json:"matches"`
	Count      int                  `json:"count"`
}

// TrackDTO represents a catalog entry in API responses.
type TrackDTO struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Artist      string   `json:"artist"`
	Album       string   `json:"album,omitempty"`
	ReleaseYear string   `json:"release_year,omitempty"`
	Genre       string   `json:"genre"`
	BPM         int      `json:"bpm,omitempty"`
	Key         string   `json:"key,omitempty"`
	Producers   []string `json:"producers,omitempty"`
}

// ListTracksResponse is the response for GET /api/tracks.
type ListTracksResponse struct {
	Tracks []TrackDTO `json:"tracks"`
	Count  int        `json:"count"`
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}
