// Package beattrace resolves audio assets against candidate match sources
// and returns a ranked list of commercial tracks that may contain or
// resemble the asset.
package beattrace

import (
	"context"

	"github.com/beattrace/beattrace/pkg/models"
)

// Source is one interchangeable lookup strategy. Implementations are
// best-effort: recoverable failures should be absorbed and reported as an
// empty result set, but any error or panic that does escape is demoted by
// the orchestrator to "no results from this source".
type Source interface {
	Name() string
	Lookup(ctx context.Context, fp models.Fingerprint, fileName string) ([]models.MatchRecord, error)
}

// Deriver produces the lookup fingerprint for an asset. Derivation never
// fails; unreadable metadata falls back to fixed defaults.
type Deriver interface {
	Derive(asset *models.AudioAsset) models.Fingerprint
}

type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	Debugf(format string, args ...any)
}
