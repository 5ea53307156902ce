package assess

import (
	"context"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/snarg/hanyu-engine/internal/asr"
	"github.com/snarg/hanyu-engine/internal/audio"
	"github.com/snarg/hanyu-engine/internal/lexicon"
	"github.com/snarg/hanyu-engine/internal/report"
	"github.com/snarg/hanyu-engine/internal/score"
	"github.com/snarg/hanyu-engine/internal/segment"
)

func newTestEngine() *score.Engine {
	lex := lexicon.New()
	return score.NewEngine(lex, segment.New(lex))
}

// makeWAV builds a RIFF/WAVE buffer with n bytes of audible samples.
func makeWAV(n int) []byte {
	buf := make([]byte, n)
	copy(buf, "RIFF")
	copy(buf[8:], "WAVE")
	for i := 44; i+1 < n; i += 2 {
		binary.LittleEndian.PutUint16(buf[i:], 4000)
	}
	return buf
}

type mockFactory struct {
	engine *score.Engine
}

func (f *mockFactory) New(name string) (asr.Provider, error) {
	return asr.NewMockProvider(f.engine, 42), nil
}

type failingProvider struct{ err error }

func (p *failingProvider) Name() string { return "stub" }
func (p *failingProvider) AnalyzeAudio(context.Context, []byte, string, asr.Options) (*report.Report, error) {
	return nil, p.err
}

type failingFactory struct{ err error }

func (f *failingFactory) New(string) (asr.Provider, error) {
	return &failingProvider{err: f.err}, nil
}

type recordingStore struct {
	target string
	rep    *report.Report
}

func (s *recordingStore) InsertReport(_ context.Context, targetText string, rep *report.Report) error {
	s.target = targetText
	s.rep = rep
	return nil
}

type recordingNotifier struct {
	analysisID string
	payload    any
}

func (n *recordingNotifier) PublishReport(analysisID string, v any) {
	n.analysisID = analysisID
	n.payload = v
}

func newAnalyzer(t *testing.T, factory asr.Factory, mock *asr.MockProvider, store ReportStore, notifier Notifier) *Analyzer {
	t.Helper()
	orch := asr.NewOrchestrator(factory, []string{"stub"}, asr.DefaultRetryPolicy(), zerolog.Nop())
	return NewAnalyzer(AnalyzerOptions{
		Validator: audio.NewValidator(audio.DefaultThresholds(), nil, zerolog.Nop()),
		Orch:      orch,
		Mock:      mock,
		Preferred: "stub",
		Store:     store,
		Notifier:  notifier,
		Log:       zerolog.Nop(),
	})
}

func TestAnalyzeEndToEnd(t *testing.T) {
	engine := newTestEngine()
	store := &recordingStore{}
	notifier := &recordingNotifier{}
	a := newAnalyzer(t, &mockFactory{engine: engine}, nil, store, notifier)

	rep, err := a.Analyze(context.Background(), makeWAV(60000), "你好")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if rep.AnalysisID == "" {
		t.Error("AnalysisID is empty")
	}
	if rep.AudioQuality.Rating != audio.RatingGood {
		t.Errorf("Rating = %q, want good", rep.AudioQuality.Rating)
	}
	if got := rep.AudioQuality.EstimatedDurationSec; got != 1.875 {
		t.Errorf("EstimatedDurationSec = %v, want 1.875", got)
	}
	if rep.OverallAccuracy <= 0 {
		t.Errorf("OverallAccuracy = %v, want > 0", rep.OverallAccuracy)
	}
	if len(rep.Words) != 1 {
		t.Errorf("len(Words) = %d, want 1 segment for 你好", len(rep.Words))
	}

	if store.target != "你好" {
		t.Errorf("stored target = %q, want 你好", store.target)
	}
	if store.rep != rep {
		t.Error("stored report differs from returned report")
	}
	if notifier.analysisID != rep.AnalysisID {
		t.Errorf("notified id = %q, want %q", notifier.analysisID, rep.AnalysisID)
	}
	notice, ok := notifier.payload.(ReportNotice)
	if !ok {
		t.Fatalf("notification payload is %T, want ReportNotice", notifier.payload)
	}
	if notice.TargetText != "你好" || notice.OverallAccuracy != rep.OverallAccuracy {
		t.Errorf("notice = %+v", notice)
	}
}

func TestAnalyzeEmptyTarget(t *testing.T) {
	a := newAnalyzer(t, &mockFactory{engine: newTestEngine()}, nil, nil, nil)

	if _, err := a.Analyze(context.Background(), makeWAV(60000), "   "); !errors.Is(err, ErrEmptyTarget) {
		t.Errorf("err = %v, want ErrEmptyTarget", err)
	}
}

func TestAnalyzeEmptyAudio(t *testing.T) {
	a := newAnalyzer(t, &mockFactory{engine: newTestEngine()}, nil, nil, nil)

	if _, err := a.Analyze(context.Background(), nil, "你好"); !errors.Is(err, audio.ErrEmptyAudio) {
		t.Errorf("err = %v, want ErrEmptyAudio", err)
	}
}

func TestAnalyzeMockFallback(t *testing.T) {
	engine := newTestEngine()
	vendorErr := errors.New("quota exhausted")
	mock := asr.NewMockProvider(engine, 42)
	a := newAnalyzer(t, &failingFactory{err: vendorErr}, mock, nil, nil)

	rep, err := a.Analyze(context.Background(), makeWAV(60000), "你好")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if rep.Provider != asr.ServiceMock {
		t.Errorf("Provider = %q, want mock", rep.Provider)
	}
}

func TestAnalyzeAllFailedWithoutFallback(t *testing.T) {
	vendorErr := errors.New("quota exhausted")
	a := newAnalyzer(t, &failingFactory{err: vendorErr}, nil, nil, nil)

	_, err := a.Analyze(context.Background(), makeWAV(60000), "你好")
	if !errors.Is(err, asr.ErrAllProvidersFailed) {
		t.Errorf("err = %v, want ErrAllProvidersFailed", err)
	}
	if !errors.Is(err, vendorErr) {
		t.Errorf("err = %v, want wrapped vendor error", err)
	}
}

func TestInFlightReturnsToZero(t *testing.T) {
	a := newAnalyzer(t, &mockFactory{engine: newTestEngine()}, nil, nil, nil)

	if _, err := a.Analyze(context.Background(), makeWAV(60000), "你好"); err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if got := a.InFlight(); got != 0 {
		t.Errorf("InFlight = %d, want 0", got)
	}
}
