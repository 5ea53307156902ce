// Package audio classifies raw recorded-audio buffers: WAV format
// detection, size thresholds, and an amplitude/silence scan. It does
// no real signal processing — ratings are byte-level heuristics over
// the 16 kHz/16-bit/mono buffers the clients record.
package audio

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// ErrEmptyAudio is returned for a nil or zero-length buffer. It is the
// only error Analyze can return; everything else degrades the rating.
var ErrEmptyAudio = errors.New("audio buffer is empty")

// Rating is the coarse quality classification of a buffer.
type Rating string

const (
	RatingPoor      Rating = "poor"
	RatingFair      Rating = "fair"
	RatingGood      Rating = "good"
	RatingExcellent Rating = "excellent"
)

// Size thresholds in bytes. Overridable via Thresholds for tests and
// deployments with different client codecs.
type Thresholds struct {
	Empty int // below this: unusable
	Short int // below this: too short for amplitude analysis
	Good  int // above this: enough signal for a confident rating
}

// DefaultThresholds matches the 16 kHz/16-bit/mono client recordings.
func DefaultThresholds() Thresholds {
	return Thresholds{Empty: 1000, Short: 5000, Good: 50000}
}

// bytesPerSecond for 16 kHz, 16-bit, mono PCM.
const bytesPerSecond = 32000

// wavHeaderSize is the canonical RIFF/WAVE header length.
const wavHeaderSize = 44

// Amplitude summarizes the 16-bit sample scan.
type Amplitude struct {
	Avg          float64 `json:"avg"`
	Max          float64 `json:"max"`
	SilenceRatio float64 `json:"silenceRatio"`
}

// Assessment is the quality verdict for one buffer, derived once per
// request and read-only afterwards.
type Assessment struct {
	Rating               Rating    `json:"rating"`
	Confidence           float64   `json:"confidence"`
	EstimatedDurationSec float64   `json:"estimatedDurationSec"`
	HasContent           bool      `json:"hasContent"`
	IsValidFormat        bool      `json:"isValidFormat"`
	Amplitude            Amplitude `json:"amplitude"`
}

// QualityFactor is the score penalty multiplier for the rating,
// applied to fluency scores and the overall accuracy.
func (a Assessment) QualityFactor() float64 {
	switch a.Rating {
	case RatingPoor:
		return 0.5
	case RatingFair:
		return 0.7
	default:
		return 1.0
	}
}

// DebugStore receives raw buffer copies for offline inspection.
// Implemented by the storage package; saves are fire-and-forget.
type DebugStore interface {
	Save(ctx context.Context, key string, data []byte, contentType string) error
}

// Validator assesses buffers and optionally mirrors them to a debug
// store. A zero-store Validator only assesses.
type Validator struct {
	thresholds Thresholds
	store      DebugStore
	log        zerolog.Logger
}

// NewValidator creates a Validator. store may be nil.
func NewValidator(t Thresholds, store DebugStore, log zerolog.Logger) *Validator {
	return &Validator{thresholds: t, store: store, log: log}
}

// Analyze classifies buf and, when a debug store is configured, kicks
// off a background copy keyed by analysisID. The copy can fail or lag
// without affecting the returned assessment.
func (v *Validator) Analyze(buf []byte, analysisID string) (Assessment, error) {
	if len(buf) == 0 {
		return Assessment{}, ErrEmptyAudio
	}

	a := Assessment{
		IsValidFormat:        isRIFFWave(buf),
		EstimatedDurationSec: float64(len(buf)) / bytesPerSecond,
	}

	if len(buf) >= v.thresholds.Short {
		a.Amplitude = scanAmplitude(buf)
	}

	switch {
	case len(buf) < v.thresholds.Empty:
		a.Rating, a.Confidence = RatingPoor, 0
	case len(buf) > v.thresholds.Good:
		a.Rating, a.Confidence = RatingGood, 0.8
	case len(buf) > 20000:
		a.Rating, a.Confidence = RatingFair, 0.6
	default:
		a.Rating, a.Confidence = RatingPoor, 0.3
	}

	hasSignal := len(buf) < v.thresholds.Short || a.Amplitude.SilenceRatio < 0.8
	a.HasContent = len(buf) >= v.thresholds.Empty && hasSignal

	if v.store != nil && analysisID != "" {
		v.saveDebugCopy(buf, analysisID)
	}

	return a, nil
}

// saveDebugCopy persists the raw buffer in the background. The copy is
/// detached from the request: its own timeout, errors only logged.
func (v *Validator) saveDebugCopy(buf []byte, analysisID string) {
	cp := make([]byte, len(buf))
	copy(cp, buf)
	key := fmt.Sprintf("%s/%s.wav", time.Now().UTC().Format("2006-01-02"), analysisID)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := v.store.Save(ctx, key, cp, "audio/wav"); err != nil {
			v.log.Warn().Err(err).Str("key", key).Msg("debug audio save failed")
			return
		}
		v.log.Debug().Str("key", key).Int("bytes", len(cp)).Msg("debug audio saved")
	}()
}

// isRIFFWave checks the canonical WAV magic: "RIFF" at 0 and "WAVE" at 8.
func isRIFFWave(buf []byte) bool {
	if len(buf) < 12 {
		return false
	}
	return string(buf[0:4]) == "RIFF" && string(buf[8:12]) == "WAVE"
}

// scanAmplitude reads 16-bit little-endian samples after the 44-byte
// header and summarizes average/max absolute amplitude and the share
// of exactly-zero samples.
func scanAmplitude(buf []byte) Amplitude {
	data := buf
	if len(data) > wavHeaderSize {
		data = data[wavHeaderSize:]
	}

	total := len(data) / 2
	if total == 0 {
		return Amplitude{}
	}

	var sum float64
	var max float64
	zeros := 0
	for i := 0; i+1 < len(data); i += 2 {
		s := int16(binary.LittleEndian.Uint16(data[i : i+2]))
		abs := float64(s)
		if abs < 0 {
			abs = -abs
		}
		sum += abs
		if abs > max {
			max = abs
		}
		if s == 0 {
			zeros++
		}
	}

	return Amplitude{
		Avg:          sum / float64(total),
		Max:          max,
		SilenceRatio: float64(zeros) / float64(total),
	}
}
