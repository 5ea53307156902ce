package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr     string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"60s"`
	IdleTimeout  time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`

	AuthToken string `env:"AUTH_TOKEN"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`

	// Optional; empty disables report persistence.
	DatabaseURL string `env:"DATABASE_URL"`

	// Optional; empty disables report notifications.
	MQTTBrokerURL string `env:"MQTT_BROKER_URL"`
	MQTTClientID  string `env:"MQTT_CLIENT_ID" envDefault:"hanyu-engine"`
	MQTTUsername  string `env:"MQTT_USERNAME"`
	MQTTPassword  string `env:"MQTT_PASSWORD"`
	MQTTTopicBase string `env:"MQTT_TOPIC_BASE" envDefault:"hanyu/reports"`

	ASRPrimary       string        `env:"ASR_PRIMARY" envDefault:"openai_whisper"`
	ASRFallbackOrder []string      `env:"ASR_FALLBACK_ORDER" envDefault:"openai_whisper,google,azure,assemblyai"`
	ASRTimeout       time.Duration `env:"ASR_TIMEOUT" envDefault:"30s"`
	ASRMaxAttempts   int           `env:"ASR_MAX_ATTEMPTS" envDefault:"3"`
	ASRRetryBase     time.Duration `env:"ASR_RETRY_BASE_DELAY" envDefault:"250ms"`
	MockFallback     bool          `env:"MOCK_FALLBACK" envDefault:"true"`

	OpenAIKey     string `env:"OPENAI_API_KEY"`
	WhisperModel  string `env:"WHISPER_MODEL" envDefault:"whisper-1"`
	GoogleKey     string `env:"GOOGLE_SPEECH_API_KEY"`
	AzureKey      string `env:"AZURE_SPEECH_KEY"`
	AzureRegion   string `env:"AZURE_SPEECH_REGION"`
	AssemblyAIKey string `env:"ASSEMBLYAI_API_KEY"`

	// Debug copies of incoming audio. Empty dir and bucket disables the store.
	DebugAudioDir       string        `env:"DEBUG_AUDIO_DIR"`
	DebugAudioBucket    string        `env:"DEBUG_AUDIO_S3_BUCKET"`
	DebugAudioEndpoint  string        `env:"DEBUG_AUDIO_S3_ENDPOINT"`
	DebugAudioRegion    string        `env:"DEBUG_AUDIO_S3_REGION" envDefault:"us-east-1"`
	DebugAudioAccessKey string        `env:"DEBUG_AUDIO_S3_ACCESS_KEY"`
	DebugAudioSecretKey string        `env:"DEBUG_AUDIO_S3_SECRET_KEY"`
	DebugAudioRetention time.Duration `env:"DEBUG_AUDIO_RETENTION" envDefault:"72h"`
}

// Overrides holds CLI flag values that take priority over env vars.
type Overrides struct {
	EnvFile     string
	HTTPAddr    string
	LogLevel    string
	DatabaseURL string
	ASRPrimary  string
}

// Load reads configuration from .env file, environment variables, and CLI overrides.
// Priority: CLI flags > environment variables > .env file > struct defaults.
func Load(overrides Overrides) (*Config, error) {
	// Load .env file (silent if missing)
	envFile := overrides.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if _, err := os.Stat(envFile); err == nil {
		_ = godotenv.Load(envFile)
	}

	// Parse environment variables into config struct
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	// Apply CLI overrides (non-empty values win)
	if overrides.HTTPAddr != "" {
		cfg.HTTPAddr = overrides.HTTPAddr
	}
	if overrides.LogLevel != "" {
		cfg.LogLevel = overrides.LogLevel
	}
	if overrides.DatabaseURL != "" {
		cfg.DatabaseURL = overrides.DatabaseURL
	}
	if overrides.ASRPrimary != "" {
		cfg.ASRPrimary = overrides.ASRPrimary
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.ASRMaxAttempts < 1 {
		return fmt.Errorf("ASR_MAX_ATTEMPTS must be at least 1, got %d", c.ASRMaxAttempts)
	}
	if len(c.ASRFallbackOrder) == 0 {
		return fmt.Errorf("ASR_FALLBACK_ORDER must name at least one provider")
	}
	for i, s := range c.ASRFallbackOrder {
		c.ASRFallbackOrder[i] = strings.TrimSpace(s)
	}
	return nil
}
