package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/snarg/hanyu-engine/internal/config"
)

// AudioStore holds debug copies of incoming audio buffers.
// key format: {YYYY-MM-DD}/{analysisID}.wav
type AudioStore interface {
	Save(ctx context.Context, key string, data []byte, contentType string) error

	// Open returns a reader for a stored buffer.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Exists checks if a buffer is present.
	Exists(ctx context.Context, key string) bool

	// Type returns "local" or "s3".
	Type() string
}

// New creates an AudioStore based on config. Returns nil when neither a
// local directory nor a bucket is configured — debug copies are off.
// The returned pruner, if any, must be started and stopped by the caller.
func New(cfg *config.Config, log zerolog.Logger) (AudioStore, *RetentionPruner, error) {
	if cfg.DebugAudioBucket != "" {
		s3store, err := NewS3Store(cfg, log)
		if err != nil {
			return nil, nil, fmt.Errorf("S3 init failed: %w", err)
		}

		// Startup validation: verify credentials and bucket access
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s3store.HeadBucket(ctx); err != nil {
			return nil, nil, fmt.Errorf("S3 startup check failed (bucket=%q endpoint=%q): %w",
				cfg.DebugAudioBucket, cfg.DebugAudioEndpoint, err)
		}
		log.Info().Str("bucket", cfg.DebugAudioBucket).Str("endpoint", cfg.DebugAudioEndpoint).
			Msg("S3 connection verified")
		return s3store, nil, nil
	}

	if cfg.DebugAudioDir == "" {
		return nil, nil, nil
	}

	local := NewLocalStore(cfg.DebugAudioDir)
	var pruner *RetentionPruner
	if cfg.DebugAudioRetention > 0 {
		pruner = NewRetentionPruner(cfg.DebugAudioDir, cfg.DebugAudioRetention, log)
	}
	return local, pruner, nil
}
