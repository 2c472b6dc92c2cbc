package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// trackRow is the persistence shape of an Entry. Position preserves the
// canonical catalog order across reloads.
type trackRow struct {
	ID          string `gorm:"primaryKey;type:varchar(36)"`
	Position    int    `gorm:"index:idx_position"`
	Title       string `gorm:"index:idx_track_meta,priority:1"`
	Artist      string `gorm:"index:idx_track_meta,priority:2"`
	Album       string
	ReleaseYear string
	Genre       string `gorm:"index:idx_genre"`
	BPM         int
	MusicKey    string
	Producers   string
	SpotifyID   string
	AppleID     string
	YouTubeID   string
	CreatedAt   time.Time
}

func (trackRow) TableName() string { return "tracks" }

func toRow(e Entry, position int) trackRow {
	return trackRow{
		ID:          e.ID,
		Position:    position,
		Title:       e.Title,
		Artist:      e.Artist,
		Album:       e.Album,
		ReleaseYear: e.ReleaseYear,
		Genre:       e.Genre,
		BPM:         e.BPM,
		MusicKey:    e.Key,
		Producers:   strings.Join(e.Producers, ","),
		SpotifyID:   e.SpotifyID,
		AppleID:     e.AppleID,
		YouTubeID:   e.YouTubeID,
	}
}

func (r trackRow) toEntry() Entry {
	var producers []string
	if r.Producers != "" {
		producers = strings.Split(r.Producers, ",")
	}
	return Entry{
		ID:          r.ID,
		Title:       r.Title,
		Artist:      r.Artist,
		Album:       r.Album,
		ReleaseYear: r.ReleaseYear,
		Genre:       r.Genre,
		BPM:         r.BPM,
		Key:         r.MusicKey,
		Producers:   producers,
		SpotifyID:   r.SpotifyID,
		AppleID:     r.AppleID,
		YouTubeID:   r.YouTubeID,
	}
}

// Load returns the catalog backed by the sqlite database at dbPath,
// seeding it with the built-in entries on first use. The database is read
// fully into memory and closed before returning; the catalog itself never
// touches disk again. An empty dbPath skips persistence and returns the
// seed catalog directly.
func Load(dbPath string) (*Catalog, error) {
	if dbPath == "" {
		return NewCatalog(Seed()), nil
	}

	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating catalog dir: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening catalog db: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting sql.DB from gorm: %w", err)
	}
	defer sqlDB.Close()

	if err := db.AutoMigrate(&trackRow{}); err != nil {
		return nil, fmt.Errorf("migrating catalog: %w", err)
	}

	var count int64
	if err := db.Model(&trackRow{}).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("counting tracks: %w", err)
	}
	if count == 0 {
		rows := make([]trackRow, 0, len(Seed()))
		for i, e := range Seed() {
			rows = append(rows, toRow(e, i))
		}
		if err := db.CreateInBatches(rows, 100).Error; err != nil {
			return nil, fmt.Errorf("seeding catalog: %w", err)
		}
	}

	var rows []trackRow
	if err := db.Order("position").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("loading tracks: %w", err)
	}

	entries := make([]Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, r.toEntry())
	}
	return NewCatalog(entries), nil
}
