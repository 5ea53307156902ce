// Package halluc detects ASR hallucinations: transcript content the
// recognizer fabricated rather than heard. Detection never fails a
// request — it yields a verdict whose penalty multiplier degrades
// scores downstream.
package halluc

import (
	"fmt"
	"strings"

	"github.com/antzucaro/matchr"
	"github.com/snarg/hanyu-engine/internal/lexicon"
	"github.com/snarg/hanyu-engine/internal/segment"
)

// Severity grades how strongly the transcript looks fabricated.
type Severity string

const (
	SeverityNone   Severity = "none"
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Decision thresholds. Tuned against Whisper output on silent and
// noisy learner recordings.
const (
	highOverlap  = 0.2
	highLenRatio = 10.0
	medOverlap   = 0.3
	medLenRatio  = 3.0
	shortOverlap = 0.5
	shortRatio   = 0.3

	// fuzzyPhraseSim is the JaroWinkler floor for near-miss matches
	// against the known phrase list ("thank you for watchin").
	fuzzyPhraseSim = 0.92
)

// Verdict is the detection result consumed by the scoring engine.
type Verdict struct {
	Detected     bool     `json:"detected"`
	Severity     Severity `json:"severity"`
	OverlapRatio float64  `json:"overlapRatio"`
	LengthRatio  float64  `json:"lengthRatio"`
	Message      string   `json:"message,omitempty"`
}

// Detect compares a transcript against the expected target text.
func Detect(transcript, targetText string) Verdict {
	cleanTranscript := segment.CleanHan(transcript)
	cleanTarget := segment.CleanHan(targetText)

	v := Verdict{
		Severity:     SeverityNone,
		OverlapRatio: overlapRatio(cleanTarget, cleanTranscript),
		LengthRatio:  lengthRatio(cleanTarget, cleanTranscript),
	}

	transcriptRunes := len([]rune(cleanTranscript))
	targetRunes := len([]rune(cleanTarget))

	switch {
	case matchesKnownPhrase(transcript):
		v.Detected = true
		v.Severity = SeverityHigh
		v.Message = "transcript matches a known ASR filler phrase"

	case v.LengthRatio > highLenRatio && v.OverlapRatio < medOverlap:
		v.Detected = true
		v.Severity = SeverityMedium
		v.Message = fmt.Sprintf("transcript is %.1fx longer than the target with little overlap", v.LengthRatio)

	case float64(transcriptRunes) < float64(targetRunes)*shortRatio && v.OverlapRatio < shortOverlap:
		v.Detected = true
		v.Severity = SeverityMedium
		v.Message = "transcript is far shorter than the target with little overlap"

	case v.OverlapRatio < highOverlap:
		v.Detected = true
		v.Severity = SeverityHigh
		v.Message = fmt.Sprintf("only %.0f%% of target characters appear in the transcript", v.OverlapRatio*100)
	}

	return v
}

// Multiplier maps a verdict to the score penalty applied to every
// word assessment. 0 zeroes the report out entirely.
func (v Verdict) Multiplier() float64 {
	if !v.Detected {
		return 1.0
	}
	if v.Severity == SeverityHigh || v.OverlapRatio == 0 || v.LengthRatio > highLenRatio {
		return 0.0
	}
	if v.Severity == SeverityMedium || v.OverlapRatio < highOverlap || v.LengthRatio > medLenRatio {
		return 0.1
	}
	return 0.5
}

// ShouldZeroOut reports whether the penalty wipes all scores.
func (v Verdict) ShouldZeroOut() bool { return v.Multiplier() == 0 }

// overlapRatio is |distinct(target) ∩ distinct(transcript)| over
// |distinct(target)|, 0 for an empty target.
func overlapRatio(cleanTarget, cleanTranscript string) float64 {
	targetSet := make(map[rune]struct{})
	for _, r := range cleanTarget {
		targetSet[r] = struct{}{}
	}
	if len(targetSet) == 0 {
		return 0
	}

	transcriptSet := make(map[rune]struct{})
	for _, r := range cleanTranscript {
		transcriptSet[r] = struct{}{}
	}

	shared := 0
	for r := range targetSet {
		if _, ok := transcriptSet[r]; ok {
			shared++
		}
	}
	return float64(shared) / float64(len(targetSet))
}

func lengthRatio(cleanTarget, cleanTranscript string) float64 {
	t := len([]rune(cleanTarget))
	if t == 0 {
		return 0
	}
	return float64(len([]rune(cleanTranscript))) / float64(t)
}

// matchesKnownPhrase checks the curated phrase list: case-insensitive
// substring first, then a JaroWinkler near-miss pass to catch slightly
// garbled renderings of the same filler.
func matchesKnownPhrase(transcript string) bool {
	lower := strings.ToLower(strings.TrimSpace(transcript))
	if lower == "" {
		return false
	}
	for _, phrase := range lexicon.HallucinationPhrases() {
		p := strings.ToLower(phrase)
		if strings.Contains(lower, p) {
			return true
		}
		if len(p) >= 8 && matchr.JaroWinkler(lower, p, false) >= fuzzyPhraseSim {
			return true
		}
	}
	return false
}
