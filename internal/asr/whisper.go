package asr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/snarg/hanyu-engine/internal/report"
	"github.com/snarg/hanyu-engine/internal/score"
)

const whisperEndpoint = "https://api.openai.com/v1/audio/transcriptions"

// WhisperProvider calls the OpenAI /v1/audio/transcriptions endpoint
// with verbose_json output for word-level timestamps.
type WhisperProvider struct {
	apiKey  string
	model   string
	engine  *score.Engine
	client  *http.Client
	baseURL string
}

// whisperResponse is the verbose_json payload. Whisper has no per-word
// confidence; segment avg_logprob stands in.
type whisperResponse struct {
	Text     string  `json:"text"`
	Language string  `json:"language"`
	Duration float64 `json:"duration"`
	Words    []struct {
		Word  string  `json:"word"`
		Start float64 `json:"start"`
		End   float64 `json:"end"`
	} `json:"words"`
	Segments []struct {
		Start      float64 `json:"start"`
		End        float64 `json:"end"`
		AvgLogprob float64 `json:"avg_logprob"`
	} `json:"segments"`
}

// NewWhisperProvider validates credentials and builds the provider.
func NewWhisperProvider(apiKey, model string, timeout time.Duration, engine *score.Engine) (*WhisperProvider, error) {
	if apiKey == "" {
		return nil, &ConfigError{Provider: ServiceWhisper, Missing: "OPENAI_API_KEY"}
	}
	if model == "" {
		model = "whisper-1"
	}
	return &WhisperProvider{
		apiKey:  apiKey,
		model:   model,
		engine:  engine,
		client:  &http.Client{Timeout: timeout},
		baseURL: whisperEndpoint,
	}, nil
}

func (p *WhisperProvider) Name() string { return ServiceWhisper }

func (p *WhisperProvider) AnalyzeAudio(ctx context.Context, buf []byte, targetText string, opts Options) (*report.Report, error) {
	tr, err := p.transcribe(ctx, buf, opts)
	if err != nil {
		return nil, err
	}
	return buildReport(p.engine, tr, targetText, p.Name(), opts), nil
}

func (p *WhisperProvider) transcribe(ctx context.Context, buf []byte, opts Options) (report.Transcription, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	part, err := w.CreateFormFile("file", "audio.wav")
	if err != nil {
		return report.Transcription{}, fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(buf); err != nil {
		return report.Transcription{}, fmt.Errorf("copy audio data: %w", err)
	}

	w.WriteField("model", p.model)
	lang := opts.Language
	if lang == "" {
		lang = "zh"
	}
	w.WriteField("language", lang)
	w.WriteField("response_format", "verbose_json")
	w.WriteField("timestamp_granularities[]", "word")
	w.WriteField("timestamp_granularities[]", "segment")
	w.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, &body)
	if err != nil {
		return report.Transcription{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return report.Transcription{}, &CallError{Provider: p.Name(), Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return report.Transcription{}, &CallError{Provider: p.Name(), Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return report.Transcription{}, callErr(p.Name(), resp.StatusCode, "%s", string(respBody))
	}

	var result whisperResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return report.Transcription{}, callErr(p.Name(), resp.StatusCode, "decode response: %v", err)
	}

	return p.normalize(result), nil
}

// normalize maps the verbose_json payload to the common transcription
// shape. Word confidence comes from the enclosing segment's
// avg_logprob (exp-transformed); 0.9 when no segments were returned.
func (p *WhisperProvider) normalize(r whisperResponse) report.Transcription {
	confAt := func(t float64) float64 {
		for _, s := range r.Segments {
			if t >= s.Start && t <= s.End {
				return clamp01(math.Exp(s.AvgLogprob))
			}
		}
		return 0.9
	}

	words := make([]report.TranscribedWord, 0, len(r.Words))
	for _, w := range r.Words {
		words = append(words, report.TranscribedWord{
			Text:       w.Word,
			StartTime:  w.Start,
			EndTime:    w.End,
			Confidence: confAt(w.Start),
		})
	}

	overall := averageWordConfidence(words)
	if overall == 0 {
		overall = 0.9
	}
	return report.Transcription{
		Transcript: r.Text,
		Confidence: overall,
		Words:      words,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
