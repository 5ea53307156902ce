// Package asr abstracts the speech-recognition vendors behind one
// contract and orchestrates ordered fallback across them. Every
// provider transcribes audio with its vendor API and scores the
// result with the shared engine, so reports are structurally
// identical regardless of vendor.
package asr

import (
	"context"

	"github.com/snarg/hanyu-engine/internal/audio"
	"github.com/snarg/hanyu-engine/internal/report"
	"github.com/snarg/hanyu-engine/internal/score"
)

// Service names, used in configuration and in Report.Provider.
const (
	ServiceWhisper    = "openai_whisper"
	ServiceGoogle     = "google"
	ServiceAzure      = "azure"
	ServiceAssemblyAI = "assemblyai"
	ServiceMock       = "mock"
)

// Options carries per-request context every provider needs.
type Options struct {
	Quality    audio.Assessment
	AnalysisID string
	Language   string // BCP-47-ish vendor language hint; "" = zh
}

// Provider is the uniform contract over ASR vendors. Construction
// validates credentials; AnalyzeAudio fails with *CallError on
// network/auth/quota problems during the call.
type Provider interface {
	Name() string
	AnalyzeAudio(ctx context.Context, buf []byte, targetText string, opts Options) (*report.Report, error)
}

// buildReport is the shared final step of every provider: hand the
// normalized transcription to the scoring engine.
func buildReport(engine *score.Engine, tr report.Transcription, target, providerName string, opts Options) *report.Report {
	return engine.BuildReport(score.Input{
		Target:        target,
		Transcription: tr,
		Quality:       opts.Quality,
		Provider:      providerName,
		AnalysisID:    opts.AnalysisID,
	})
}

// averageWordConfidence derives a transcription-level confidence when
// the vendor reports only word-level values.
func averageWordConfidence(words []report.TranscribedWord) float64 {
	if len(words) == 0 {
		return 0
	}
	sum := 0.0
	for _, w := range words {
		sum += w.Confidence
	}
	return sum / float64(len(words))
}
