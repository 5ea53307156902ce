package asr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/snarg/hanyu-engine/internal/report"
	"github.com/snarg/hanyu-engine/internal/score"
)

const googleSpeechEndpoint = "https://speech.googleapis.com/v1/speech:recognize"

// GoogleProvider calls the Google Cloud Speech-to-Text REST API
// (synchronous recognize, LINEAR16).
type GoogleProvider struct {
	apiKey  string
	engine  *score.Engine
	client  *http.Client
	baseURL string
}

type googleRequest struct {
	Config googleConfig `json:"config"`
	Audio  googleAudio  `json:"audio"`
}

type googleConfig struct {
	Encoding              string `json:"encoding"`
	SampleRateHertz       int    `json:"sampleRateHertz"`
	LanguageCode          string `json:"languageCode"`
	EnableWordTimeOffsets bool   `json:"enableWordTimeOffsets"`
}

type googleAudio struct {
	Content string `json:"content"` // base64 PCM
}

type googleResponse struct {
	Results []struct {
		Alternatives []struct {
			Transcript string  `json:"transcript"`
			Confidence float64 `json:"confidence"`
			Words      []struct {
				StartTime string `json:"startTime"` // "1.200s"
				EndTime   string `json:"endTime"`
				Word      string `json:"word"`
			} `json:"words"`
		} `json:"alternatives"`
	} `json:"results"`
}

// NewGoogleProvider validates credentials and builds the provider.
func NewGoogleProvider(apiKey string, timeout time.Duration, engine *score.Engine) (*GoogleProvider, error) {
	if apiKey == "" {
		return nil, &ConfigError{Provider: ServiceGoogle, Missing: "GOOGLE_SPEECH_API_KEY"}
	}
	return &GoogleProvider{
		apiKey:  apiKey,
		engine:  engine,
		client:  &http.Client{Timeout: timeout},
		baseURL: googleSpeechEndpoint,
	}, nil
}

func (p *GoogleProvider) Name() string { return ServiceGoogle }

func (p *GoogleProvider) AnalyzeAudio(ctx context.Context, buf []byte, targetText string, opts Options) (*report.Report, error) {
	tr, err := p.transcribe(ctx, buf, opts)
	if err != nil {
		return nil, err
	}
	return buildReport(p.engine, tr, targetText, p.Name(), opts), nil
}

func (p *GoogleProvider) transcribe(ctx context.Context, buf []byte, opts Options) (report.Transcription, error) {
	lang := opts.Language
	if lang == "" {
		lang = "zh-CN"
	}
	payload, err := json.Marshal(googleRequest{
		Config: googleConfig{
			Encoding:              "LINEAR16",
			SampleRateHertz:       16000,
			LanguageCode:          lang,
			EnableWordTimeOffsets: true,
		},
		Audio: googleAudio{Content: base64.StdEncoding.EncodeToString(buf)},
	})
	if err != nil {
		return report.Transcription{}, fmt.Errorf("marshal request: %w", err)
	}

	url := p.baseURL + "?key=" + p.apiKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return report.Transcription{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

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

	var result googleResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return report.Transcription{}, callErr(p.Name(), resp.StatusCode, "decode response: %v", err)
	}
	return p.normalize(result), nil
}

func (p *GoogleProvider) normalize(r googleResponse) report.Transcription {
	var tr report.Transcription
	confSum, confN := 0.0, 0
	for _, res := range r.Results {
		if len(res.Alternatives) == 0 {
			continue
		}
		alt := res.Alternatives[0]
		tr.Transcript += alt.Transcript
		confSum += alt.Confidence
		confN++
		for _, w := range alt.Words {
			tr.Words = append(tr.Words, report.TranscribedWord{
				Text:       w.Word,
				StartTime:  parseGoogleDuration(w.StartTime),
				EndTime:    parseGoogleDuration(w.EndTime),
				Confidence: alt.Confidence,
			})
		}
	}
	if confN > 0 {
		tr.Confidence = confSum / float64(confN)
	}
	return tr
}

// parseGoogleDuration parses protobuf JSON durations like "1.200s".
func parseGoogleDuration(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "s"), 64)
	if err != nil {
		return 0
	}
	return v
}
