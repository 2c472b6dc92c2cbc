// Package fingerprint derives lookup keys from audio assets.
//
// The derivation is a proxy key, not a perceptual fingerprint: it is
// stable for the same file name and size but carries no information about
// the audio's acoustic content. It sits behind the beattrace.Deriver
// interface so a real perceptual hasher can replace it without changing
// the pipeline contract.
package fingerprint

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/go-audio/wav"

	"github.com/beattrace/beattrace/pkg/models"
)

const (
	fingerprintBytes = 32

	// FallbackDurationSeconds substitutes for the duration whenever the
	// asset's metadata cannot be read.
	FallbackDurationSeconds = 180
)

// ProxyDeriver implements beattrace.Deriver with the proxy-key scheme.
type ProxyDeriver struct{}

func NewDeriver() *ProxyDeriver {
	return &ProxyDeriver{}
}

// Derive produces the fingerprint for an asset. It never fails: unreadable
// duration metadata falls back to FallbackDurationSeconds.
func (d *ProxyDeriver) Derive(asset *models.AudioAsset) models.Fingerprint {
	duration := readDurationSeconds(asset.Content)

	var nameSum int64
	for _, r := range asset.FileName {
		nameSum += int64(r)
	}

	var b strings.Builder
	b.Grow(fingerprintBytes * 2)
	for i := 0; i < fingerprintBytes; i++ {
		v := ((nameSum*int64(i+1) + asset.SizeBytes) % 256) ^ (int64(duration) % 256)
		fmt.Fprintf(&b, "%02x", v)
	}

	return models.Fingerprint{ID: b.String(), DurationSeconds: duration}
}

// readDurationSeconds reads the duration from WAV headers. Anything that
// is not a readable WAV yields the fallback duration.
func readDurationSeconds(content []byte) int {
	dec := wav.NewDecoder(bytes.NewReader(content))
	if !dec.IsValidFile() {
		return FallbackDurationSeconds
	}
	dur, err := dec.Duration()
	if err != nil || dur <= 0 {
		return FallbackDurationSeconds
	}
	secs := int(math.Round(dur.Seconds()))
	if secs <= 0 {
		return FallbackDurationSeconds
	}
	return secs
}
