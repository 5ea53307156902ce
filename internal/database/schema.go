package database

import "context"

const schemaSQL = `
CREATE TABLE IF NOT EXISTS pronunciation_reports (
    id               bigserial PRIMARY KEY,
    analysis_id      uuid NOT NULL UNIQUE,
    target_text      text NOT NULL,
    transcript       text NOT NULL,
    provider         text NOT NULL,
    overall_accuracy real NOT NULL,
    audio_rating     text NOT NULL,
    hallucination    text NOT NULL DEFAULT 'none',
    words            jsonb NOT NULL,
    audio_quality    jsonb NOT NULL,
    recommendations  jsonb NOT NULL,
    created_at       timestamptz NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_reports_created_at ON pronunciation_reports (created_at DESC);
CREATE INDEX IF NOT EXISTS idx_reports_provider ON pronunciation_reports (provider);
`

// InitSchema applies the schema on a fresh database. Every statement is
// idempotent, so re-running on an initialized database is a no-op.
func (db *DB) InitSchema(ctx context.Context) error {
	var exists bool
	err := db.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT FROM pg_tables WHERE schemaname = 'public' AND tablename = 'pronunciation_reports')`,
	).Scan(&exists)
	if err != nil {
		return err
	}

	if exists {
		db.log.Debug().Msg("schema already initialized, skipping")
		return nil
	}

	db.log.Info().Msg("fresh database detected — applying schema")
	if _, err := db.Pool.Exec(ctx, schemaSQL); err != nil {
		return err
	}
	db.log.Info().Msg("schema applied successfully")
	return nil
}
