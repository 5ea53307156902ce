package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/snarg/hanyu-engine/internal/api"
	"github.com/snarg/hanyu-engine/internal/asr"
	"github.com/snarg/hanyu-engine/internal/assess"
	"github.com/snarg/hanyu-engine/internal/audio"
	"github.com/snarg/hanyu-engine/internal/config"
	"github.com/snarg/hanyu-engine/internal/database"
	"github.com/snarg/hanyu-engine/internal/lexicon"
	"github.com/snarg/hanyu-engine/internal/metrics"
	"github.com/snarg/hanyu-engine/internal/mqttclient"
	"github.com/snarg/hanyu-engine/internal/score"
	"github.com/snarg/hanyu-engine/internal/segment"
	"github.com/snarg/hanyu-engine/internal/storage"
)

var version = "dev"

func main() {
	startTime := time.Now()

	var overrides config.Overrides
	flag.StringVar(&overrides.EnvFile, "env-file", "", "path to .env file")
	flag.StringVar(&overrides.HTTPAddr, "addr", "", "http listen address")
	flag.StringVar(&overrides.LogLevel, "log-level", "", "log level")
	flag.StringVar(&overrides.DatabaseURL, "database-url", "", "postgres connection string")
	flag.StringVar(&overrides.ASRPrimary, "asr-primary", "", "preferred speech service")
	flag.Parse()

	// Config
	cfg, err := config.Load(overrides)
	if err != nil {
		early := zerolog.New(os.Stderr).With().Timestamp().Logger()
		early.Fatal().Err(err).Msg("failed to load config")
	}

	// Logger
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stdout).With().Timestamp().Logger().Level(level)
	log.Info().Str("version", version).Msg("hanyu-engine starting")

	// Context for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Database (optional)
	var db *database.DB
	if cfg.DatabaseURL != "" {
		dbLog := log.With().Str("component", "database").Logger()
		db, err = database.Connect(ctx, cfg.DatabaseURL, dbLog)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer db.Close()
		if err := db.InitSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to initialize schema")
		}
	} else {
		log.Info().Msg("no DATABASE_URL, report persistence disabled")
	}

	// MQTT (optional)
	var mqtt *mqttclient.Client
	if cfg.MQTTBrokerURL != "" {
		mqttLog := log.With().Str("component", "mqtt").Logger()
		mqtt, err = mqttclient.Connect(mqttclient.Options{
			BrokerURL: cfg.MQTTBrokerURL,
			ClientID:  cfg.MQTTClientID,
			TopicBase: cfg.MQTTTopicBase,
			Username:  cfg.MQTTUsername,
			Password:  cfg.MQTTPassword,
			Log:       mqttLog,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to mqtt broker")
		}
		defer mqtt.Close()
	}

	// Debug audio store (optional)
	store, pruner, err := storage.New(cfg, log.With().Str("component", "storage").Logger())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize debug audio store")
	}
	if pruner != nil {
		pruner.Start()
		defer pruner.Stop()
	}

	// Scoring engine and pipeline
	lex := lexicon.New()
	engine := score.NewEngine(lex, segment.New(lex))

	var debugStore audio.DebugStore
	if store != nil {
		debugStore = store
	}
	validator := audio.NewValidator(audio.DefaultThresholds(), debugStore, log.With().Str("component", "audio").Logger())

	registry := asr.NewRegistry(asr.Credentials{
		OpenAIKey:     cfg.OpenAIKey,
		WhisperModel:  cfg.WhisperModel,
		GoogleKey:     cfg.GoogleKey,
		AzureKey:      cfg.AzureKey,
		AzureRegion:   cfg.AzureRegion,
		AssemblyAIKey: cfg.AssemblyAIKey,
	}, cfg.ASRTimeout, engine)
	orch := asr.NewOrchestrator(registry, cfg.ASRFallbackOrder, asr.RetryPolicy{
		MaxAttempts: cfg.ASRMaxAttempts,
		BaseDelay:   cfg.ASRRetryBase,
	}, log.With().Str("component", "asr").Logger())

	var mock *asr.MockProvider
	if cfg.MockFallback {
		mock = asr.NewMockProvider(engine, time.Now().UnixNano())
	}

	var reportStore assess.ReportStore
	if db != nil {
		reportStore = db
	}
	var notifier assess.Notifier
	if mqtt != nil {
		notifier = mqtt
	}
	analyzer := assess.NewAnalyzer(assess.AnalyzerOptions{
		Validator: validator,
		Orch:      orch,
		Mock:      mock,
		Preferred: cfg.ASRPrimary,
		Store:     reportStore,
		Notifier:  notifier,
		Log:       log.With().Str("component", "pipeline").Logger(),
	})

	// Live gauges: pipeline depth and db pool state
	if db != nil {
		prometheus.MustRegister(metrics.NewCollector(db.Pool, analyzer))
	} else {
		prometheus.MustRegister(metrics.NewCollector(nil, analyzer))
	}

	// HTTP Server
	httpLog := log.With().Str("component", "http").Logger()
	srv := api.NewServer(cfg, analyzer, db, mqtt, version, startTime, httpLog)

	// Start HTTP server in background
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	// Wait for shutdown signal or server error
	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("http server error")
		}
	}

	// Graceful shutdown with 10s timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown error")
	}

	log.Info().Msg("hanyu-engine stopped")
}
