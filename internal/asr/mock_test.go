package asr

import (
	"context"
	"testing"

	"github.com/snarg/hanyu-engine/internal/audio"
	"github.com/snarg/hanyu-engine/internal/lexicon"
	"github.com/snarg/hanyu-engine/internal/score"
	"github.com/snarg/hanyu-engine/internal/segment"
)

func newTestEngine() *score.Engine {
	lex := lexicon.New()
	return score.NewEngine(lex, segment.New(lex))
}

func TestMockProviderDeterministicWithPinnedSeed(t *testing.T) {
	opts := Options{Quality: audio.Assessment{Rating: audio.RatingGood, HasContent: true}}

	first, err := NewMockProvider(newTestEngine(), 42).AnalyzeAudio(context.Background(), nil, "你好吗", opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := NewMockProvider(newTestEngine(), 42).AnalyzeAudio(context.Background(), nil, "你好吗", opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.OverallAccuracy != second.OverallAccuracy {
		t.Errorf("accuracy differs across runs with the same seed: %v vs %v",
			first.OverallAccuracy, second.OverallAccuracy)
	}
	if len(first.Words) != len(second.Words) {
		t.Fatalf("word counts differ: %d vs %d", len(first.Words), len(second.Words))
	}
	for i := range first.Words {
		if first.Words[i].Score != second.Words[i].Score {
			t.Errorf("word %d score differs: %v vs %v", i, first.Words[i].Score, second.Words[i].Score)
		}
	}
}

func TestMockProviderMarksItself(t *testing.T) {
	rep, err := NewMockProvider(newTestEngine(), 1).AnalyzeAudio(context.Background(), nil, "你好",
		Options{Quality: audio.Assessment{Rating: audio.RatingGood, HasContent: true}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Provider != ServiceMock {
		t.Errorf("provider = %q, want %q", rep.Provider, ServiceMock)
	}
	if rep.OverallAccuracy <= 0 || rep.OverallAccuracy > 100 {
		t.Errorf("accuracy = %v, want in (0,100]", rep.OverallAccuracy)
	}
}

func TestRegistryMissingCredentials(t *testing.T) {
	r := NewRegistry(Credentials{}, 0, newTestEngine())

	for _, name := range []string{ServiceWhisper, ServiceGoogle, ServiceAzure, ServiceAssemblyAI} {
		_, err := r.New(name)
		var cfgErr *ConfigError
		if err == nil || !asConfigError(err, &cfgErr) {
			t.Errorf("%s: expected ConfigError, got %v", name, err)
		}
	}

	if _, err := r.New("nonsense"); err == nil {
		t.Error("unknown service should be rejected")
	}
}

func asConfigError(err error, target **ConfigError) bool {
	ce, ok := err.(*ConfigError)
	if ok {
		*target = ce
	}
	return ok
}
