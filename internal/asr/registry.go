package asr

import (
	"fmt"
	"time"

	"github.com/snarg/hanyu-engine/internal/score"
)

// Credentials holds the per-vendor secrets from configuration.
type Credentials struct {
	OpenAIKey     string
	WhisperModel  string
	GoogleKey     string
	AzureKey      string
	AzureRegion   string
	AssemblyAIKey string
}

// Registry constructs providers by service name. Construction is
// deferred to call time so a misconfigured vendor only surfaces when
// the fallback chain actually reaches it.
type Registry struct {
	creds   Credentials
	timeout time.Duration
	engine  *score.Engine
}

// NewRegistry creates a provider registry.
func NewRegistry(creds Credentials, timeout time.Duration, engine *score.Engine) *Registry {
	return &Registry{creds: creds, timeout: timeout, engine: engine}
}

// New builds the named provider, or a *ConfigError when its
// credentials are absent. Unknown names are a hard error.
func (r *Registry) New(name string) (Provider, error) {
	switch name {
	case ServiceWhisper:
		return NewWhisperProvider(r.creds.OpenAIKey, r.creds.WhisperModel, r.timeout, r.engine)
	case ServiceGoogle:
		return NewGoogleProvider(r.creds.GoogleKey, r.timeout, r.engine)
	case ServiceAzure:
		return NewAzureProvider(r.creds.AzureKey, r.creds.AzureRegion, r.timeout, r.engine)
	case ServiceAssemblyAI:
		return NewAssemblyAIProvider(r.creds.AssemblyAIKey, r.timeout, r.engine)
	default:
		return nil, fmt.Errorf("unknown speech service %q", name)
	}
}
