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

const assemblyAIBaseURL = "https://api.assemblyai.com/v2"

// AssemblyAIProvider drives AssemblyAI's async flow: upload the
// buffer, create a transcript job, poll until it settles.
type AssemblyAIProvider struct {
	apiKey       string
	engine       *score.Engine
	client       *http.Client
	baseURL      string
	pollInterval time.Duration
}

type assemblyAITranscript struct {
	ID         string  `json:"id"`
	Status     string  `json:"status"` // queued, processing, completed, error
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	Error      string  `json:"error"`
	Words      []struct {
		Text       string  `json:"text"`
		Start      int64   `json:"start"` // ms
		End        int64   `json:"end"`
		Confidence float64 `json:"confidence"`
	} `json:"words"`
}

// NewAssemblyAIProvider validates credentials and builds the provider.
func NewAssemblyAIProvider(apiKey string, timeout time.Duration, engine *score.Engine) (*AssemblyAIProvider, error) {
	if apiKey == "" {
		return nil, &ConfigError{Provider: ServiceAssemblyAI, Missing: "ASSEMBLYAI_API_KEY"}
	}
	return &AssemblyAIProvider{
		apiKey:       apiKey,
		engine:       engine,
		client:       &http.Client{Timeout: timeout},
		baseURL:      assemblyAIBaseURL,
		pollInterval: time.Second,
	}, nil
}

func (p *AssemblyAIProvider) Name() string { return ServiceAssemblyAI }

func (p *AssemblyAIProvider) AnalyzeAudio(ctx context.Context, buf []byte, targetText string, opts Options) (*report.Report, error) {
	tr, err := p.transcribe(ctx, buf, opts)
	if err != nil {
		return nil, err
	}
	return buildReport(p.engine, tr, targetText, p.Name(), opts), nil
}

func (p *AssemblyAIProvider) transcribe(ctx context.Context, buf []byte, opts Options) (report.Transcription, error) {
	audioURL, err := p.upload(ctx, buf)
	if err != nil {
		return report.Transcription{}, err
	}

	lang := opts.Language
	if lang == "" {
		lang = "zh"
	}
	id, err := p.createTranscript(ctx, audioURL, lang)
	if err != nil {
		return report.Transcription{}, err
	}

	return p.poll(ctx, id)
}

func (p *AssemblyAIProvider) upload(ctx context.Context, buf []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/upload", bytes.NewReader(buf))
	if err != nil {
		return "", fmt.Errorf("create upload request: %w", err)
	}
	req.Header.Set("Authorization", p.apiKey)
	req.Header.Set("Content-Type", "application/octet-stream")

	var out struct {
		UploadURL string `json:"upload_url"`
	}
	if err := p.doJSON(req, &out); err != nil {
		return "", err
	}
	if out.UploadURL == "" {
		return "", callErr(p.Name(), 0, "upload returned no url")
	}
	return out.UploadURL, nil
}

func (p *AssemblyAIProvider) createTranscript(ctx context.Context, audioURL, lang string) (string, error) {
	payload, _ := json.Marshal(map[string]any{
		"audio_url":     audioURL,
		"language_code": lang,
	})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/transcript", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create transcript request: %w", err)
	}
	req.Header.Set("Authorization", p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	var out assemblyAITranscript
	if err := p.doJSON(req, &out); err != nil {
		return "", err
	}
	if out.ID == "" {
		return "", callErr(p.Name(), 0, "transcript job has no id")
	}
	return out.ID, nil
}

func (p *AssemblyAIProvider) poll(ctx context.Context, id string) (report.Transcription, error) {
	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/transcript/"+id, nil)
		if err != nil {
			return report.Transcription{}, fmt.Errorf("create poll request: %w", err)
		}
		req.Header.Set("Authorization", p.apiKey)

		var out assemblyAITranscript
		if err := p.doJSON(req, &out); err != nil {
			return report.Transcription{}, err
		}

		switch out.Status {
		case "completed":
			return p.normalize(out), nil
		case "error":
			return report.Transcription{}, callErr(p.Name(), 0, "transcription failed: %s", out.Error)
		}

		select {
		case <-ctx.Done():
			return report.Transcription{}, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (p *AssemblyAIProvider) doJSON(req *http.Request, out any) error {
	resp, err := p.client.Do(req)
	if err != nil {
		return &CallError{Provider: p.Name(), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &CallError{Provider: p.Name(), Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return callErr(p.Name(), resp.StatusCode, "%s", string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return callErr(p.Name(), resp.StatusCode, "decode response: %v", err)
	}
	return nil
}

func (p *AssemblyAIProvider) normalize(t assemblyAITranscript) report.Transcription {
	tr := report.Transcription{
		Transcript: t.Text,
		Confidence: t.Confidence,
	}
	for _, w := range t.Words {
		tr.Words = append(tr.Words, report.TranscribedWord{
			Text:       w.Text,
			StartTime:  float64(w.Start) / 1000,
			EndTime:    float64(w.End) / 1000,
			Confidence: w.Confidence,
		})
	}
	return tr
}
