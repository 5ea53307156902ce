package score

import (
	"fmt"
	"strings"

	"github.com/snarg/hanyu-engine/internal/audio"
	"github.com/snarg/hanyu-engine/internal/report"
)

// Accuracy thresholds for overall guidance.
const (
	fairAccuracy = 50.0
	goodAccuracy = 70.0

	weakWordScore = 60.0
	weakToneScore = 60.0
)

// Recommendations maps a finished report to ordered user-facing
// guidance. State-free; fixed thresholds.
func Recommendations(r *report.Report) []report.Recommendation {
	var recs []report.Recommendation

	switch {
	case r.OverallAccuracy < fairAccuracy:
		recs = append(recs, report.Recommendation{
			Type:     "accuracy",
			Message:  "Overall accuracy is low — slow down and read the sentence one word at a time.",
			Priority: "high",
		})
	case r.OverallAccuracy < goodAccuracy:
		recs = append(recs, report.Recommendation{
			Type:     "accuracy",
			Message:  "Getting there — a few words were misread. Try the sentence again at a steady pace.",
			Priority: "medium",
		})
	}

	if weak := wordsBelow(r.Words, weakWordScore); len(weak) > 0 {
		recs = append(recs, report.Recommendation{
			Type:     "practice",
			Message:  fmt.Sprintf("Focus on these characters: %s", strings.Join(weak, "、")),
			Priority: "medium",
		})
	}

	if hasWeakTone(r.Words) {
		recs = append(recs, report.Recommendation{
			Type:     "tone",
			Message:  "Tone contours need practice — hum the four tones, then re-read the weak words slowly.",
			Priority: "high",
		})
	}

	recs = append(recs, qualityRecommendation(r.AudioQuality))
	return recs
}

func wordsBelow(words []report.WordAssessment, threshold float64) []string {
	var out []string
	for _, w := range words {
		if w.Score < threshold {
			out = append(out, w.Word)
		}
	}
	return out
}

func hasWeakTone(words []report.WordAssessment) bool {
	for _, w := range words {
		if w.Details.Tone < weakToneScore {
			return true
		}
	}
	return false
}

// qualityRecommendation is always appended; priority is high only for
// a poor recording.
func qualityRecommendation(q audio.Assessment) report.Recommendation {
	rec := report.Recommendation{Type: "audio", Priority: "low"}
	switch q.Rating {
	case audio.RatingPoor:
		rec.Priority = "high"
		rec.Message = "The recording quality was poor — record again closer to the microphone in a quiet room."
	case audio.RatingFair:
		rec.Message = "Recording quality was acceptable — a quieter environment would improve assessment accuracy."
	default:
		rec.Message = "Recording quality was good."
	}
	return rec
}
