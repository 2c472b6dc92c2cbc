package beattrace

import (
	"context"
	"fmt"
	"sort"

	"github.com/beattrace/beattrace/pkg/beattrace/catalog"
	"github.com/beattrace/beattrace/pkg/beattrace/fingerprint"
	"github.com/beattrace/beattrace/pkg/beattrace/source"
	"github.com/beattrace/beattrace/pkg/logger"
	"github.com/beattrace/beattrace/pkg/models"
)

// Service is the pipeline entry point. A single Service is safe for
// concurrent use: the only shared state is the read-only catalog.
type Service struct {
	deriver    Deriver
	sources    []Source
	log        Logger
	maxResults int
}

func NewService(opts ...Option) (*Service, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Logger == nil {
		cfg.Logger = logger.GetLogger()
	}
	if cfg.Deriver == nil {
		cfg.Deriver = fingerprint.NewDeriver()
	}
	if len(cfg.Sources) == 0 {
		cat, err := catalog.Load(cfg.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("loading catalog: %w", err)
		}
		cfg.Sources = []Source{
			source.NewRemote(cfg.LookupURL, cfg.LookupAPIKey, cfg.LookupTimeout),
			source.NewLocal(cat),
		}
	}

	return &Service{
		deriver:    cfg.Deriver,
		sources:    cfg.Sources,
		log:        cfg.Logger,
		maxResults: cfg.MaxResults,
	}, nil
}

// Analyze derives the asset's fingerprint, resolves it against the source
// chain and returns the matches ordered by descending score, ties kept in
// source order. It always returns a list; no match is an empty list, not
// an error.
func (s *Service) Analyze(ctx context.Context, asset *models.AudioAsset) []models.MatchRecord {
	fp := s.deriver.Derive(asset)
	s.log.Debugf("derived fingerprint %s duration=%ds file=%s", fp.ID, fp.DurationSeconds, asset.FileName)

	records := s.resolve(ctx, fp, asset.FileName)

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Score > records[j].Score
	})
	if s.maxResults > 0 && len(records) > s.maxResults {
		records = records[:s.maxResults]
	}

	s.log.Infof("analysis of %s finished with %d match(es)", asset.FileName, len(records))
	return records
}

// resolve tries each source in priority order and returns the first
// non-empty result set. A source error or empty answer both mean "try the
// next source"; if every source comes up empty the asset is reported as
// unmatched with an empty set.
func (s *Service) resolve(ctx context.Context, fp models.Fingerprint, fileName string) []models.MatchRecord {
	for _, src := range s.sources {
		records, err := s.safeLookup(ctx, src, fp, fileName)
		if err != nil {
			s.log.Warnf("source %s failed: %v", src.Name(), err)
			continue
		}
		if len(records) == 0 {
			s.log.Debugf("source %s returned no matches", src.Name())
			continue
		}
		s.log.Debugf("source %s returned %d match(es)", src.Name(), len(records))
		return records
	}
	return []models.MatchRecord{}
}

// safeLookup shields the orchestrator from a misbehaving source.
func (s *Service) safeLookup(ctx context.Context, src Source, fp models.Fingerprint, fileName string) (records []models.MatchRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			records = nil
			err = fmt.Errorf("source %s panicked: %v", src.Name(), r)
		}
	}()
	return src.Lookup(ctx, fp, fileName)
}
