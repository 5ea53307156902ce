package asr

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/snarg/hanyu-engine/internal/audio"
)

func TestWhisperProviderRequiresKey(t *testing.T) {
	if _, err := NewWhisperProvider("", "", time.Second, newTestEngine()); err == nil {
		t.Fatal("expected ConfigError without an API key")
	}
}

func TestWhisperProviderAnalyze(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		if got := r.FormValue("model"); got != "whisper-1" {
			t.Errorf("model = %q, want whisper-1", got)
		}
		if got := r.FormValue("language"); got != "zh" {
			t.Errorf("language = %q, want zh", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("auth header = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"text": "你好",
			"language": "zh",
			"duration": 1.0,
			"words": [
				{"word": "你", "start": 0.1, "end": 0.4},
				{"word": "好", "start": 0.4, "end": 0.7}
			],
			"segments": [{"start": 0.0, "end": 1.0, "avg_logprob": -0.1}]
		}`))
	}))
	defer srv.Close()

	p, err := NewWhisperProvider("test-key", "", time.Second, newTestEngine())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.baseURL = srv.URL

	rep, err := p.AnalyzeAudio(context.Background(), []byte("fake-wav"), "你好",
		Options{Quality: audio.Assessment{Rating: audio.RatingGood, HasContent: true}})
	if err != nil {
		t.Fatalf("AnalyzeAudio: %v", err)
	}

	if rep.Provider != ServiceWhisper {
		t.Errorf("provider = %q, want %q", rep.Provider, ServiceWhisper)
	}
	if rep.Transcription.Transcript != "你好" {
		t.Errorf("transcript = %q, want 你好", rep.Transcription.Transcript)
	}
	if len(rep.Transcription.Words) != 2 {
		t.Fatalf("words = %d, want 2", len(rep.Transcription.Words))
	}
	if rep.Transcription.Words[0].Confidence <= 0.8 {
		t.Errorf("word confidence = %v, want > 0.8 (exp(-0.1))", rep.Transcription.Words[0].Confidence)
	}
	if rep.OverallAccuracy != 100 {
		t.Errorf("overallAccuracy = %v, want 100", rep.OverallAccuracy)
	}
	if rep.Hallucination.Detected {
		t.Errorf("clean match flagged: %+v", rep.Hallucination)
	}
}

func TestWhisperProviderServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer srv.Close()

	p, _ := NewWhisperProvider("test-key", "", time.Second, newTestEngine())
	p.baseURL = srv.URL

	_, err := p.AnalyzeAudio(context.Background(), []byte("x"), "你好", Options{})
	if err == nil {
		t.Fatal("expected error")
	}
	callErr, ok := err.(*CallError)
	if !ok {
		t.Fatalf("expected *CallError, got %T", err)
	}
	if !callErr.Transient() {
		t.Error("502 should be transient")
	}
}
