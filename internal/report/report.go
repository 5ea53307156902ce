// Package report defines the pronunciation report wire contract. The
// transport layer serializes these structs as-is, so field names are
// part of the public API and must not change casually.
package report

import (
	"time"

	"github.com/snarg/hanyu-engine/internal/audio"
	"github.com/snarg/hanyu-engine/internal/halluc"
)

// TranscribedWord is one timestamped token from an ASR vendor,
// normalized to seconds regardless of the vendor's native unit.
type TranscribedWord struct {
	Text       string  `json:"text"`
	StartTime  float64 `json:"startTime"`
	EndTime    float64 `json:"endTime"`
	Confidence float64 `json:"confidence"` // 0..1
}

// Transcription is the normalized result of one provider call.
type Transcription struct {
	Transcript string            `json:"transcript"`
	Confidence float64           `json:"confidence"` // 0..1
	Words      []TranscribedWord `json:"words,omitempty"`
}

// Issue tags a specific problem on a word assessment.
type Issue string

const (
	IssueTone          Issue = "tone"
	IssuePronunciation Issue = "pronunciation"
	IssueFluency       Issue = "fluency"
	IssueHallucination Issue = "hallucination"
)

// ScoreDetails are the 0-100 sub-scores behind a word's overall score.
type ScoreDetails struct {
	Tone          float64 `json:"tone"`
	Pronunciation float64 `json:"pronunciation"`
	Fluency       float64 `json:"fluency"`
	Confidence    float64 `json:"confidence"`
}

// WordAssessment is the per-segment verdict (single character or
// compound word).
type WordAssessment struct {
	Word     string       `json:"word"`
	Pinyin   string       `json:"pinyin,omitempty"`
	Score    float64      `json:"score"` // 0..100
	Details  ScoreDetails `json:"details"`
	Feedback string       `json:"feedback,omitempty"`
	Issues   []Issue      `json:"issues,omitempty"`
}

// Recommendation is one item of user-facing guidance.
type Recommendation struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Priority string `json:"priority"` // "high", "medium", "low"
}

// Report is the sole externally visible artifact of an analysis,
// immutable once produced.
type Report struct {
	AnalysisID      string           `json:"analysisId,omitempty"`
	OverallAccuracy float64          `json:"overallAccuracy"` // 0..100
	Transcription   Transcription    `json:"transcription"`
	Words           []WordAssessment `json:"words"`
	AudioQuality    audio.Assessment `json:"audioQuality"`
	Hallucination   halluc.Verdict   `json:"hallucination"`
	Recommendations []Recommendation `json:"recommendations"`
	Provider        string           `json:"provider"`
	Timestamp       time.Time        `json:"timestamp"`
}
