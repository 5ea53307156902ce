package score

import (
	"testing"

	"github.com/snarg/hanyu-engine/internal/audio"
	"github.com/snarg/hanyu-engine/internal/report"
)

func TestRecommendationsLowAccuracy(t *testing.T) {
	r := &report.Report{
		OverallAccuracy: 30,
		AudioQuality:    audio.Assessment{Rating: audio.RatingGood},
	}
	recs := Recommendations(r)

	if recs[0].Type != "accuracy" || recs[0].Priority != "high" {
		t.Errorf("first rec = %+v, want high-priority accuracy", recs[0])
	}
}

func TestRecommendationsMediumAccuracy(t *testing.T) {
	r := &report.Report{
		OverallAccuracy: 60,
		AudioQuality:    audio.Assessment{Rating: audio.RatingGood},
	}
	recs := Recommendations(r)

	if recs[0].Type != "accuracy" || recs[0].Priority != "medium" {
		t.Errorf("first rec = %+v, want medium-priority accuracy", recs[0])
	}
}

func TestRecommendationsWeakWordsAndTones(t *testing.T) {
	r := &report.Report{
		OverallAccuracy: 85,
		Words: []report.WordAssessment{
			{Word: "你好", Score: 88, Details: report.ScoreDetails{Tone: 90}},
			{Word: "吗", Score: 45, Details: report.ScoreDetails{Tone: 40}},
		},
		AudioQuality: audio.Assessment{Rating: audio.RatingGood},
	}
	recs := Recommendations(r)

	var practice, tone bool
	for _, rec := range recs {
		if rec.Type == "practice" {
			practice = true
		}
		if rec.Type == "tone" && rec.Priority != "high" {
			t.Errorf("tone rec priority = %q, want high", rec.Priority)
		}
		if rec.Type == "tone" {
			tone = true
		}
	}
	if !practice || !tone {
		t.Errorf("missing recs: practice=%v tone=%v in %+v", practice, tone, recs)
	}
}

func TestAudioRecommendationAlwaysLast(t *testing.T) {
	cases := []struct {
		rating   audio.Rating
		priority string
	}{
		{audio.RatingPoor, "high"},
		{audio.RatingFair, "low"},
		{audio.RatingGood, "low"},
		{audio.RatingExcellent, "low"},
	}
	for _, tc := range cases {
		r := &report.Report{
			OverallAccuracy: 90,
			AudioQuality:    audio.Assessment{Rating: tc.rating},
		}
		recs := Recommendations(r)
		last := recs[len(recs)-1]
		if last.Type != "audio" {
			t.Errorf("rating %s: last rec type = %q, want audio", tc.rating, last.Type)
		}
		if last.Priority != tc.priority {
			t.Errorf("rating %s: priority = %q, want %q", tc.rating, last.Priority, tc.priority)
		}
	}
}
