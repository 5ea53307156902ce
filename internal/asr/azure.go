package asr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/snarg/hanyu-engine/internal/report"
	"github.com/snarg/hanyu-engine/internal/score"
)

// AzureProvider calls the Azure Cognitive Services short-audio STT
// REST endpoint for the configured region.
type AzureProvider struct {
	key     string
	region  string
	engine  *score.Engine
	client  *http.Client
	baseURL string // overridable in tests; "" = regional endpoint
}

// azureResponse is the format=detailed payload. Offsets/durations are
// 100-nanosecond ticks.
type azureResponse struct {
	RecognitionStatus string `json:"RecognitionStatus"`
	DisplayText       string `json:"DisplayText"`
	NBest             []struct {
		Confidence float64 `json:"Confidence"`
		Display    string  `json:"Display"`
		Words      []struct {
			Word     string `json:"Word"`
			Offset   int64  `json:"Offset"`
			Duration int64  `json:"Duration"`
		} `json:"Words"`
	} `json:"NBest"`
}

// NewAzureProvider validates credentials and builds the provider.
func NewAzureProvider(key, region string, timeout time.Duration, engine *score.Engine) (*AzureProvider, error) {
	if key == "" {
		return nil, &ConfigError{Provider: ServiceAzure, Missing: "AZURE_SPEECH_KEY"}
	}
	if region == "" {
		return nil, &ConfigError{Provider: ServiceAzure, Missing: "AZURE_SPEECH_REGION"}
	}
	return &AzureProvider{
		key:    key,
		region: region,
		engine: engine,
		client: &http.Client{Timeout: timeout},
	}, nil
}

func (p *AzureProvider) Name() string { return ServiceAzure }

func (p *AzureProvider) AnalyzeAudio(ctx context.Context, buf []byte, targetText string, opts Options) (*report.Report, error) {
	tr, err := p.transcribe(ctx, buf, opts)
	if err != nil {
		return nil, err
	}
	return buildReport(p.engine, tr, targetText, p.Name(), opts), nil
}

func (p *AzureProvider) endpoint(lang string) string {
	base := p.baseURL
	if base == "" {
		base = fmt.Sprintf("https://%s.stt.speech.microsoft.com/speech/recognition/conversation/cognitiveservices/v1", p.region)
	}
	return base + "?language=" + lang + "&format=detailed&wordLevelTimestamps=true"
}

func (p *AzureProvider) transcribe(ctx context.Context, buf []byte, opts Options) (report.Transcription, error) {
	lang := opts.Language
	if lang == "" {
		lang = "zh-CN"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint(lang), bytes.NewReader(buf))
	if err != nil {
		return report.Transcription{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", p.key)
	req.Header.Set("Content-Type", "audio/wav; codecs=audio/pcm; samplerate=16000")
	req.Header.Set("Accept", "application/json")

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

	var result azureResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return report.Transcription{}, callErr(p.Name(), resp.StatusCode, "decode response: %v", err)
	}
	if result.RecognitionStatus != "Success" {
		return report.Transcription{}, callErr(p.Name(), resp.StatusCode, "recognition status %s", result.RecognitionStatus)
	}
	return p.normalize(result), nil
}

func (p *AzureProvider) normalize(r azureResponse) report.Transcription {
	tr := report.Transcription{Transcript: r.DisplayText}
	if len(r.NBest) == 0 {
		return tr
	}

	best := r.NBest[0]
	tr.Confidence = best.Confidence
	if tr.Transcript == "" {
		tr.Transcript = best.Display
	}
	for _, w := range best.Words {
		start := ticksToSeconds(w.Offset)
		tr.Words = append(tr.Words, report.TranscribedWord{
			Text:       w.Word,
			StartTime:  start,
			EndTime:    start + ticksToSeconds(w.Duration),
			Confidence: best.Confidence,
		})
	}
	return tr
}

// ticksToSeconds converts Azure's 100-ns ticks.
func ticksToSeconds(t int64) float64 { return float64(t) / 1e7 }
