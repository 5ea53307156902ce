// Package assess ties the pipeline together: validate the buffer,
// run the provider chain, record the outcome, and hand the finished
// report to the optional collaborators (database, MQTT).
package assess

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/snarg/hanyu-engine/internal/asr"
	"github.com/snarg/hanyu-engine/internal/audio"
	"github.com/snarg/hanyu-engine/internal/halluc"
	"github.com/snarg/hanyu-engine/internal/metrics"
	"github.com/snarg/hanyu-engine/internal/report"
)

// ErrEmptyTarget is returned when the expected text contains no Han characters.
var ErrEmptyTarget = errors.New("target text is empty")

// ReportStore persists finished reports. Implemented by database.DB.
type ReportStore interface {
	InsertReport(ctx context.Context, targetText string, rep *report.Report) error
}

// Notifier announces finished reports. Implemented by mqttclient.Client.
type Notifier interface {
	PublishReport(analysisID string, v any)
}

// Analyzer runs one assessment end to end. store and notifier may be
// nil; the pipeline then skips persistence and notification.
type Analyzer struct {
	validator *audio.Validator
	orch      *asr.Orchestrator
	mock      *asr.MockProvider // nil disables the mock fallback
	preferred string
	store     ReportStore
	notifier  Notifier
	log       zerolog.Logger
	inFlight  atomic.Int64
}

type AnalyzerOptions struct {
	Validator *audio.Validator
	Orch      *asr.Orchestrator
	Mock      *asr.MockProvider
	Preferred string
	Store     ReportStore
	Notifier  Notifier
	Log       zerolog.Logger
}

func NewAnalyzer(opts AnalyzerOptions) *Analyzer {
	return &Analyzer{
		validator: opts.Validator,
		orch:      opts.Orch,
		mock:      opts.Mock,
		preferred: opts.Preferred,
		store:     opts.Store,
		notifier:  opts.Notifier,
		log:       opts.Log,
	}
}

// InFlight reports the number of assessments currently running.
func (a *Analyzer) InFlight() int {
	return int(a.inFlight.Load())
}

// Analyze assesses one audio buffer against the expected text using
// the configured preferred service.
func (a *Analyzer) Analyze(ctx context.Context, buf []byte, targetText string) (*report.Report, error) {
	return a.AnalyzeWithService(ctx, buf, targetText, "")
}

// AnalyzeWithService is Analyze with a per-request preferred service
// overriding the configured one. The returned report is complete even
// when the buffer rated poor; only an empty buffer, an empty target,
// or a fully failed provider chain (with the mock fallback off)
// produce an error.
func (a *Analyzer) AnalyzeWithService(ctx context.Context, buf []byte, targetText, preferred string) (*report.Report, error) {
	a.inFlight.Add(1)
	defer a.inFlight.Add(-1)

	targetText = strings.TrimSpace(targetText)
	if targetText == "" {
		return nil, ErrEmptyTarget
	}

	analysisID := uuid.NewString()
	start := time.Now()
	log := a.log.With().Str("analysis_id", analysisID).Logger()

	metrics.AudioBytes.Observe(float64(len(buf)))

	quality, err := a.validator.Analyze(buf, analysisID)
	if err != nil {
		metrics.AnalysesTotal.WithLabelValues("none", "invalid_audio").Inc()
		return nil, fmt.Errorf("audio validation: %w", err)
	}
	log.Debug().
		Str("rating", string(quality.Rating)).
		Float64("duration_sec", quality.EstimatedDurationSec).
		Msg("audio assessed")

	if preferred == "" {
		preferred = a.preferred
	}
	opts := asr.Options{Quality: quality, AnalysisID: analysisID}
	rep, err := a.orch.Analyze(ctx, buf, targetText, preferred, opts)
	if err != nil {
		if a.mock == nil || ctx.Err() != nil || !errors.Is(err, asr.ErrAllProvidersFailed) {
			metrics.AnalysesTotal.WithLabelValues("none", "failure").Inc()
			return nil, err
		}
		log.Warn().Err(err).Msg("all providers failed, falling back to mock")
		rep, err = a.mock.AnalyzeAudio(ctx, buf, targetText, opts)
		if err != nil {
			metrics.AnalysesTotal.WithLabelValues(asr.ServiceMock, "failure").Inc()
			return nil, err
		}
	}

	metrics.AnalysesTotal.WithLabelValues(rep.Provider, "success").Inc()
	metrics.AnalysisDuration.Observe(time.Since(start).Seconds())
	if rep.Hallucination.Severity != halluc.SeverityNone {
		metrics.HallucinationsTotal.WithLabelValues(string(rep.Hallucination.Severity)).Inc()
	}

	a.finish(ctx, targetText, rep)

	log.Info().
		Str("provider", rep.Provider).
		Float64("accuracy", rep.OverallAccuracy).
		Int("words", len(rep.Words)).
		Dur("elapsed", time.Since(start)).
		Msg("assessment complete")
	return rep, nil
}

// ReportNotice is the compact "report ready" payload published to
// subscribed clients. Full reports stay behind the HTTP API.
type ReportNotice struct {
	AnalysisID      string          `json:"analysisId"`
	TargetText      string          `json:"targetText"`
	OverallAccuracy float64         `json:"overallAccuracy"`
	Provider        string          `json:"provider"`
	Hallucination   halluc.Severity `json:"hallucination"`
	AudioRating     string          `json:"audioRating"`
	Timestamp       time.Time       `json:"timestamp"`
}

// finish runs the optional post-steps. Neither a store nor a notifier
// failure affects the response already built for the caller.
func (a *Analyzer) finish(ctx context.Context, targetText string, rep *report.Report) {
	if a.store != nil {
		storeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := a.store.InsertReport(storeCtx, targetText, rep); err != nil {
			a.log.Error().Err(err).Str("analysis_id", rep.AnalysisID).Msg("persist report")
		}
	}
	if a.notifier != nil {
		a.notifier.PublishReport(rep.AnalysisID, ReportNotice{
			AnalysisID:      rep.AnalysisID,
			TargetText:      targetText,
			OverallAccuracy: rep.OverallAccuracy,
			Provider:        rep.Provider,
			Hallucination:   rep.Hallucination.Severity,
			AudioRating:     string(rep.AudioQuality.Rating),
			Timestamp:       rep.Timestamp,
		})
	}
}
