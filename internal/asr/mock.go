package asr

import (
	"context"
	"math/rand"
	"sync"

	"github.com/snarg/hanyu-engine/internal/report"
	"github.com/snarg/hanyu-engine/internal/score"
)

// MockProvider is the deterministic degraded-path transcriber used
// when the whole provider chain is down. It "hears" the target text
// perfectly but simulates recognizer uncertainty with seeded jitter,
// and its reports carry Provider == "mock" so they can never pass for
// a genuine ASR result.
type MockProvider struct {
	engine *score.Engine

	mu  sync.Mutex
	rng *rand.Rand
}

// NewMockProvider creates a mock with a pinned entropy source. Tests
// fix the seed; main seeds from the clock.
func NewMockProvider(engine *score.Engine, seed int64) *MockProvider {
	return &MockProvider{
		engine: engine,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

func (p *MockProvider) Name() string { return ServiceMock }

func (p *MockProvider) AnalyzeAudio(_ context.Context, _ []byte, targetText string, opts Options) (*report.Report, error) {
	segs := p.engine.Segmenter().Segment(targetText)

	// One synthetic token per segment, paced at a natural 0.4s.
	var words []report.TranscribedWord
	t := 0.2
	for _, seg := range segs {
		dur := 0.4 * float64(len([]rune(seg)))
		words = append(words, report.TranscribedWord{
			Text:       seg,
			StartTime:  t,
			EndTime:    t + dur,
			Confidence: p.jitteredConfidence(),
		})
		t += dur + 0.1
	}

	tr := report.Transcription{
		Transcript: joinSegments(segs),
		Confidence: averageWordConfidence(words),
		Words:      words,
	}
	rep := buildReport(p.engine, tr, targetText, p.Name(), opts)

	// The mock path has no real transcript alignment to measure, so the
	// word-score average is the primary accuracy figure here.
	if len(rep.Words) > 0 {
		sum := 0.0
		for _, w := range rep.Words {
			sum += w.Score
		}
		rep.OverallAccuracy = sum / float64(len(rep.Words)) * opts.Quality.QualityFactor()
	}
	return rep, nil
}

// jitteredConfidence simulates ASR variability in [0.75, 0.95).
func (p *MockProvider) jitteredConfidence() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return 0.75 + 0.2*p.rng.Float64()
}

func joinSegments(segs []string) string {
	out := ""
	for _, s := range segs {
		out += s
	}
	return out
}
