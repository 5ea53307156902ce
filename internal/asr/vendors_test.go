package asr

import (
	"encoding/json"
	"testing"
)

func TestGoogleDurationParsing(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1.200s", 1.2},
		{"0s", 0},
		{"12s", 12},
		{"garbage", 0},
	}
	for _, tc := range cases {
		if got := parseGoogleDuration(tc.in); got != tc.want {
			t.Errorf("parseGoogleDuration(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestAzureNormalizeTicks(t *testing.T) {
	payload := `{
		"RecognitionStatus": "Success",
		"DisplayText": "你好",
		"NBest": [{
			"Confidence": 0.92,
			"Display": "你好",
			"Words": [
				{"Word": "你", "Offset": 1000000, "Duration": 3000000},
				{"Word": "好", "Offset": 5000000, "Duration": 3000000}
			]
		}]
	}`
	var resp azureResponse
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}

	p := &AzureProvider{}
	tr := p.normalize(resp)
	if tr.Transcript != "你好" || tr.Confidence != 0.92 {
		t.Errorf("normalize = %+v", tr)
	}
	if len(tr.Words) != 2 {
		t.Fatalf("words = %d, want 2", len(tr.Words))
	}
	if tr.Words[0].StartTime != 0.1 || tr.Words[0].EndTime != 0.4 {
		t.Errorf("word 0 timing = [%v, %v], want [0.1, 0.4]", tr.Words[0].StartTime, tr.Words[0].EndTime)
	}
	if tr.Words[1].Confidence != 0.92 {
		t.Errorf("word confidence = %v, want the alternative's 0.92", tr.Words[1].Confidence)
	}
}
