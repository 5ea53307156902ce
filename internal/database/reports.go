package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/snarg/hanyu-engine/internal/report"
)

// ErrReportNotFound is returned when no stored report matches an analysis ID.
var ErrReportNotFound = errors.New("report not found")

// ReportSummary is a lightweight listing row without the per-word payload.
type ReportSummary struct {
	AnalysisID      string    `json:"analysisId"`
	TargetText      string    `json:"targetText"`
	Transcript      string    `json:"transcript"`
	Provider        string    `json:"provider"`
	OverallAccuracy float64   `json:"overallAccuracy"`
	AudioRating     string    `json:"audioRating"`
	Hallucination   string    `json:"hallucination"`
	CreatedAt       time.Time `json:"createdAt"`
}

// InsertReport persists a full assessment report. Words, audio quality
// and recommendations go into jsonb columns so the stored report can be
// rehydrated without schema churn.
func (db *DB) InsertReport(ctx context.Context, targetText string, rep *report.Report) error {
	words, err := json.Marshal(rep.Words)
	if err != nil {
		return fmt.Errorf("marshal words: %w", err)
	}
	quality, err := json.Marshal(rep.AudioQuality)
	if err != nil {
		return fmt.Errorf("marshal audio quality: %w", err)
	}
	recs, err := json.Marshal(rep.Recommendations)
	if err != nil {
		return fmt.Errorf("marshal recommendations: %w", err)
	}

	_, err = db.Pool.Exec(ctx, `
		INSERT INTO pronunciation_reports (
			analysis_id, target_text, transcript, provider,
			overall_accuracy, audio_rating, hallucination,
			words, audio_quality, recommendations
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (analysis_id) DO NOTHING
	`,
		rep.AnalysisID, targetText, rep.Transcription.Transcript, rep.Provider,
		rep.OverallAccuracy, string(rep.AudioQuality.Rating), string(rep.Hallucination.Severity),
		words, quality, recs,
	)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

// GetByAnalysisID rehydrates a stored report.
func (db *DB) GetByAnalysisID(ctx context.Context, analysisID string) (*report.Report, string, error) {
	var (
		rep        report.Report
		targetText string
		transcript string
		words      []byte
		quality    []byte
		recs       []byte
		createdAt  time.Time
	)
	err := db.Pool.QueryRow(ctx, `
		SELECT analysis_id, target_text, transcript, provider,
		       overall_accuracy, words, audio_quality, recommendations, created_at
		FROM pronunciation_reports
		WHERE analysis_id = $1
	`, analysisID).Scan(
		&rep.AnalysisID, &targetText, &transcript, &rep.Provider,
		&rep.OverallAccuracy, &words, &quality, &recs, &createdAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, "", ErrReportNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("get report: %w", err)
	}

	rep.Transcription.Transcript = transcript
	rep.Timestamp = createdAt
	if err := json.Unmarshal(words, &rep.Words); err != nil {
		return nil, "", fmt.Errorf("unmarshal words: %w", err)
	}
	if err := json.Unmarshal(quality, &rep.AudioQuality); err != nil {
		return nil, "", fmt.Errorf("unmarshal audio quality: %w", err)
	}
	if err := json.Unmarshal(recs, &rep.Recommendations); err != nil {
		return nil, "", fmt.Errorf("unmarshal recommendations: %w", err)
	}
	return &rep, targetText, nil
}

// ListRecent returns up to limit report summaries, newest first.
func (db *DB) ListRecent(ctx context.Context, limit int) ([]ReportSummary, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := db.Pool.Query(ctx, `
		SELECT analysis_id, target_text, transcript, provider,
		       overall_accuracy, audio_rating, hallucination, created_at
		FROM pronunciation_reports
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	summaries := make([]ReportSummary, 0, limit)
	for rows.Next() {
		var s ReportSummary
		if err := rows.Scan(
			&s.AnalysisID, &s.TargetText, &s.Transcript, &s.Provider,
			&s.OverallAccuracy, &s.AudioRating, &s.Hallucination, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan report row: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
