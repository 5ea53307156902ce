package asr

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/snarg/hanyu-engine/internal/report"
)

// stubProvider returns a canned report or error.
type stubProvider struct {
	name  string
	rep   *report.Report
	err   error
	calls int
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) AnalyzeAudio(context.Context, []byte, string, Options) (*report.Report, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.rep, nil
}

// stubFactory maps names to providers; missing names yield ConfigError.
type stubFactory struct {
	providers map[string]*stubProvider
}

func (f *stubFactory) New(name string) (Provider, error) {
	p, ok := f.providers[name]
	if !ok {
		return nil, &ConfigError{Provider: name, Missing: "credentials"}
	}
	return p, nil
}

func newTestOrchestrator(f Factory, order []string) *Orchestrator {
	return NewOrchestrator(f, order, RetryPolicy{MaxAttempts: 2, BaseDelay: time.Millisecond}, zerolog.Nop())
}

func TestFallbackSecondProviderWins(t *testing.T) {
	failing := &stubProvider{name: "a", err: callErr("a", 503, "down")}
	ok := &stubProvider{name: "b", rep: &report.Report{Provider: "b"}}
	o := newTestOrchestrator(&stubFactory{providers: map[string]*stubProvider{"a": failing, "b": ok}}, []string{"a", "b"})

	rep, err := o.Analyze(context.Background(), []byte("x"), "你好", "", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Provider != "b" {
		t.Errorf("provider = %q, want b", rep.Provider)
	}
	if failing.calls == 0 {
		t.Error("provider a was never attempted")
	}
}

func TestFallbackAllFailSurfacesLastError(t *testing.T) {
	errA := callErr("a", 401, "bad key")
	errB := callErr("b", 403, "quota")
	o := newTestOrchestrator(&stubFactory{providers: map[string]*stubProvider{
		"a": {name: "a", err: errA},
		"b": {name: "b", err: errB},
	}}, []string{"a", "b"})

	_, err := o.Analyze(context.Background(), []byte("x"), "你好", "", Options{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Errorf("error does not wrap ErrAllProvidersFailed: %v", err)
	}
	if !errors.Is(err, errB) {
		t.Errorf("error does not carry the last provider's error: %v", err)
	}
	if errors.Is(err, errA) {
		t.Errorf("error should not carry the first provider's error: %v", err)
	}
}

func TestFallbackSkipsMisconfiguredProvider(t *testing.T) {
	ok := &stubProvider{name: "b", rep: &report.Report{Provider: "b"}}
	o := newTestOrchestrator(&stubFactory{providers: map[string]*stubProvider{"b": ok}}, []string{"a", "b"})

	rep, err := o.Analyze(context.Background(), []byte("x"), "你好", "", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Provider != "b" {
		t.Errorf("provider = %q, want b", rep.Provider)
	}
}

func TestRetryTransientThenSucceedCounts(t *testing.T) {
	// Non-transient failures must not be retried.
	authFail := &stubProvider{name: "a", err: callErr("a", 401, "bad key")}
	o := newTestOrchestrator(&stubFactory{providers: map[string]*stubProvider{"a": authFail}}, []string{"a"})

	_, err := o.Analyze(context.Background(), []byte("x"), "你好", "", Options{})
	if err == nil {
		t.Fatal("expected error")
	}
	if authFail.calls != 1 {
		t.Errorf("non-transient error retried %d times, want 1 call", authFail.calls)
	}

	// Transient failures use the full retry budget.
	rateLimited := &stubProvider{name: "b", err: callErr("b", 429, "slow down")}
	o = newTestOrchestrator(&stubFactory{providers: map[string]*stubProvider{"b": rateLimited}}, []string{"b"})
	o.Analyze(context.Background(), []byte("x"), "你好", "", Options{})
	if rateLimited.calls != 2 {
		t.Errorf("transient error attempted %d times, want 2", rateLimited.calls)
	}
}

func TestCancellationStopsChain(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	failing := &stubProvider{name: "a", err: callErr("a", 0, "net down")}
	never := &stubProvider{name: "b", rep: &report.Report{Provider: "b"}}
	o := newTestOrchestrator(&stubFactory{providers: map[string]*stubProvider{"a": failing, "b": never}}, []string{"a", "b"})

	cancel()
	_, err := o.Analyze(ctx, []byte("x"), "你好", "", Options{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if never.calls != 0 {
		t.Error("fallback provider was attempted after cancellation")
	}
}

func TestPreferredServiceGoesFirst(t *testing.T) {
	o := newTestOrchestrator(&stubFactory{}, []string{"a", "b", "c"})

	got := o.Order("b")
	want := []string{"b", "a", "c"}
	if len(got) != len(want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}
