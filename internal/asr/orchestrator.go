package asr

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/snarg/hanyu-engine/internal/metrics"
	"github.com/snarg/hanyu-engine/internal/report"
)

// Factory constructs providers by name. Implemented by Registry;
// swapped for stubs in tests.
type Factory interface {
	New(name string) (Provider, error)
}

// RetryPolicy bounds the in-provider retry loop. Retries happen within
// one provider before falling back to the next.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

// DefaultRetryPolicy matches the configured 3-attempt exponential
// backoff starting at 250ms.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, BaseDelay: 250 * time.Millisecond}
}

// Orchestrator walks the configured provider order, retrying transient
// failures per provider and falling back on everything else. No
// parallel racing: strictly first-success-wins in order.
type Orchestrator struct {
	factory Factory
	order   []string
	retry   RetryPolicy
	log     zerolog.Logger
}

// NewOrchestrator creates an orchestrator over the given service order
// (primary first).
func NewOrchestrator(factory Factory, order []string, retry RetryPolicy, log zerolog.Logger) *Orchestrator {
	if retry.MaxAttempts < 1 {
		retry.MaxAttempts = 1
	}
	return &Orchestrator{factory: factory, order: order, retry: retry, log: log}
}

// Order returns the effective service order for a request: preferred
// (if any) first, then the configured chain with duplicates removed.
func (o *Orchestrator) Order(preferred string) []string {
	out := make([]string, 0, len(o.order)+1)
	seen := make(map[string]bool)
	if preferred != "" {
		out = append(out, preferred)
		seen[preferred] = true
	}
	for _, name := range o.order {
		if !seen[name] {
			out = append(out, name)
			seen[name] = true
		}
	}
	return out
}

// Analyze runs the fallback chain. The first provider success returns
// immediately. Misconfigured providers are skipped; call failures move
// on after the retry budget. When every provider fails, the last
// error is wrapped in ErrAllProvidersFailed. Caller cancellation stops
// the chain without trying further providers.
func (o *Orchestrator) Analyze(ctx context.Context, buf []byte, targetText, preferred string, opts Options) (*report.Report, error) {
	var lastErr error

	for _, name := range o.Order(preferred) {
		p, err := o.factory.New(name)
		if err != nil {
			o.log.Warn().Err(err).Str("provider", name).Msg("provider unavailable, skipping")
			metrics.ProviderAttemptsTotal.WithLabelValues(name, "skipped").Inc()
			lastErr = err
			continue
		}

		rep, err := o.analyzeWithRetry(ctx, p, buf, targetText, opts)
		if err == nil {
			metrics.ProviderAttemptsTotal.WithLabelValues(name, "success").Inc()
			return rep, nil
		}
		if ctx.Err() != nil {
			// Caller is gone; abandon the chain rather than burning
			// the remaining providers on a dead request.
			return nil, ctx.Err()
		}
		metrics.ProviderAttemptsTotal.WithLabelValues(name, "failure").Inc()
		o.log.Warn().Err(err).Str("provider", name).Msg("provider failed, trying next")
		lastErr = err
	}

	if lastErr == nil {
		lastErr = errors.New("no speech providers configured")
	}
	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

// analyzeWithRetry retries transient call failures with exponential
// backoff before giving up on this provider.
func (o *Orchestrator) analyzeWithRetry(ctx context.Context, p Provider, buf []byte, targetText string, opts Options) (*report.Report, error) {
	var lastErr error
	for attempt := 1; attempt <= o.retry.MaxAttempts; attempt++ {
		rep, err := p.AnalyzeAudio(ctx, buf, targetText, opts)
		if err == nil {
			return rep, nil
		}
		lastErr = err

		var callErr *CallError
		if !errors.As(err, &callErr) || !callErr.Transient() || attempt == o.retry.MaxAttempts {
			break
		}

		delay := o.retry.BaseDelay << (attempt - 1)
		o.log.Debug().Err(err).Str("provider", p.Name()).Int("attempt", attempt).Dur("backoff", delay).Msg("transient provider error, retrying")
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}
	return nil, lastErr
}
