package asr

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrAllProvidersFailed is returned by the orchestrator when the whole
// chain is exhausted. The concrete last vendor error is wrapped
// alongside it, so errors.Is matches both.
var ErrAllProvidersFailed = errors.New("all speech providers failed")

// ConfigError means a provider cannot be constructed (missing
// credentials or region). The orchestrator skips such providers.
type ConfigError struct {
	Provider string
	Missing  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: missing %s", e.Provider, e.Missing)
}

// CallError is a failed vendor call: network, auth, quota or a bad
// response. Transient errors are retried before falling back.
type CallError struct {
	Provider string
	Status   int // HTTP status, 0 for transport errors
	Err      error
}

func (e *CallError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Provider, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *CallError) Unwrap() error { return e.Err }

// Transient reports whether retrying the same provider could help:
// transport failures, rate limits and server-side errors.
func (e *CallError) Transient() bool {
	if e.Status == 0 {
		return true
	}
	return e.Status == http.StatusTooManyRequests || e.Status >= 500
}

func callErr(provider string, status int, format string, args ...any) *CallError {
	return &CallError{Provider: provider, Status: status, Err: fmt.Errorf(format, args...)}
}
