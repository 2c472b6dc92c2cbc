package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/beattrace/beattrace/internal/config"
	"github.com/beattrace/beattrace/pkg/beattrace"
	"github.com/beattrace/beattrace/pkg/beattrace/catalog"
	"github.com/beattrace/beattrace/pkg/logger"
	"github.com/beattrace/beattrace/pkg/models"
)

// The OS MIME table may miss or remap audio extensions; register the
// ones the upload fallback relies on.
func init() {
	mime.AddExtensionType(".mp3", "audio/mpeg")
	mime.AddExtensionType(".wav", "audio/wav")
	mime.AddExtensionType(".ogg", "audio/ogg")
	mime.AddExtensionType(".m4a", "audio/mp4")
	mime.AddExtensionType(".flac", "audio/flac")
}

// Server is the HTTP presentation layer. Upload policy (type allow-list,
// size ceiling) is enforced here, before the pipeline is invoked; the
// pipeline itself accepts whatever bytes it is given.
type Server struct {
	service *beattrace.Service
	catalog *catalog.Catalog
	config  *config.Config
	log     beattrace.Logger
}

func NewServer(service *beattrace.Service, cat *catalog.Catalog, cfg *config.Config) *Server {
	return &Server{
		service: service,
		catalog: cat,
		config:  cfg,
		log:     logger.GetLogger(),
	}
}

func (s *Server) respondJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Errorf("Failed to encode JSON response: %v", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, statusCode int, message string) {
	s.respondJSON(w, statusCode, ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
		Code:    statusCode,
	})
}

// handleRoot handles GET /
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]any{
		"service": "beattrace API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"health":  "GET /health",
			"tracks":  "GET /api/tracks",
			"analyze": "POST /api/analyze",
		},
	})
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// handleTracks handles GET /api/tracks
func (s *Server) handleTracks(w http.ResponseWriter, r *http.Request) {
	entries := s.catalog.Entries()
	tracks := make([]TrackDTO, len(entries))
	for i, e := range entries {
		tracks[i] = TrackDTO{
			ID:          e.ID,
			Title:       e.Title,
			Artist:      e.Artist,
			Album:       e.Album,
			ReleaseYear: e.ReleaseYear,
			Genre:       e.Genre,
			BPM:         e.BPM,
			Key:         e.Key,
			Producers:   e.Producers,
		}
	}

	s.respondJSON(w, http.StatusOK, ListTracksResponse{
		Tracks: tracks,
		Count:  len(tracks),
	})
}

// handleAnalyze handles POST /api/analyze (multipart file upload).
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	maxUpload := s.config.Server.MaxUploadBytes
	r.Body = http.MaxBytesReader(w, r.Body, maxUpload+1<<20)

	if err := r.ParseMultipartForm(maxUpload); err != nil {
		s.log.Errorf("Failed to parse form: %v", err)
		s.respondError(w, http.StatusBadRequest, "Failed to parse form data")
		return
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "audio file is required")
		return
	}
	defer file.Close()

	if header.Size > maxUpload {
		s.respondError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("file exceeds the %s limit", humanize.Bytes(uint64(maxUpload))))
		return
	}

	mediaType := uploadMediaType(header.Header.Get("Content-Type"), header.Filename)
	if !s.typeAllowed(mediaType) {
		s.respondError(w, http.StatusUnsupportedMediaType,
			fmt.Sprintf("media type %q is not allowed", mediaType))
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		s.log.Errorf("Failed to read upload: %v", err)
		s.respondError(w, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}

	analysisID := uuid.NewString()
	s.log.Infof("analysis %s: %s (%s, %s)",
		analysisID, header.Filename, mediaType, humanize.Bytes(uint64(header.Size)))

	matches := s.service.Analyze(ctx, &models.AudioAsset{
		Content:   content,
		FileName:  header.Filename,
		MediaType: mediaType,
		SizeBytes: header.Size,
	})

	s.respondJSON(w, http.StatusOK, AnalyzeResponse{
		AnalysisID: analysisID,
		FileName:   header.Filename,
		Matches:    matches,
		Count:      len(matches),
	})
}

// uploadMediaType resolves the declared content type, falling back to the
// file extension when the part header is missing or malformed.
func uploadMediaType(declared, fileName string) string {
	if declared != "" {
		if mt, _, err := mime.ParseMediaType(declared); err == nil && mt != "application/octet-stream" {
			return mt
		}
	}
	if byExt := mime.TypeByExtension(filepath.Ext(fileName)); byExt != "" {
		if mt, _, err := mime.ParseMediaType(byExt); err == nil {
			return mt
		}
	}
	return declared
}

func (s *Server) typeAllowed(mediaType string) bool {
	for _, allowed := range s.config.Server.AllowedTypes {
		if mediaType == allowed {
			return true
		}
	}
	return false
}
