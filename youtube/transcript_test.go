package youtube

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(body string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func xmlResponse(body string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"text/xml"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestSelectTrack(t *testing.T) {
	manualEN := CaptionTrack{BaseURL: "manual-en", LanguageCode: "en"}
	manualFR := CaptionTrack{BaseURL: "manual-fr", LanguageCode: "fr"}
	generatedEN := CaptionTrack{BaseURL: "gen-en", LanguageCode: "en", Kind: "asr"}
	generatedES := CaptionTrack{BaseURL: "gen-es", LanguageCode: "es", Kind: "asr"}
	manualENGB := CaptionTrack{BaseURL: "manual-en-gb", LanguageCode: "en-GB"}

	tests := []struct {
		name   string
		tracks []CaptionTrack
		lang   string
		want   string
	}{
		{
			name:   "manual preferred over generated for same language",
			tracks: []CaptionTrack{generatedEN, manualEN},
			lang:   "en",
			want:   "manual-en",
		},
		{
			name:   "generated used when no manual track matches language",
			tracks: []CaptionTrack{manualFR, generatedEN},
			lang:   "en",
			want:   "gen-en",
		},
		{
			name:   "prefix match on regional variant",
			tracks: []CaptionTrack{manualFR, manualENGB},
			lang:   "en",
			want:   "manual-en-gb",
		},
		{
			name:   "no language match falls back to first manual",
			tracks: []CaptionTrack{generatedES, manualFR},
			lang:   "de",
			want:   "manual-fr",
		},
		{
			name:   "only generated tracks falls back to first track",
			tracks: []CaptionTrack{generatedES, generatedEN},
			lang:   "de",
			want:   "gen-es",
		},
		{
			name:   "empty preference picks first manual",
			tracks: []CaptionTrack{generatedEN, manualFR},
			lang:   "",
			want:   "manual-fr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := selectTrack(tt.tracks, tt.lang)
			if got.BaseURL != tt.want {
				t.Errorf("selectTrack() = %q, want %q", got.BaseURL, tt.want)
			}
		})
	}
}

func TestFetchTranscript(t *testing.T) {
	playerJSON := `{
		"captions": {
			"playerCaptionsTracklistRenderer": {
				"captionTracks": [
					{"baseUrl": "https://captions.example/en", "languageCode": "en"}
				]
			}
		}
	}`
	timedtextXML := `<?xml version="1.0" encoding="utf-8"?>
<transcript>
	<text start="0" dur="1.5">Hello &amp; welcome</text>
	<text start="1.5" dur="2">to the video</text>
	<text start="3.5" dur="1"> </text>
</transcript>`

	client := NewClient(&http.Client{
		Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			if req.Method == http.MethodPost {
				return jsonResponse(playerJSON), nil
			}
			return xmlResponse(timedtextXML), nil
		}),
	})

	got, err := client.FetchTranscript(context.Background(), "dQw4w9WgXcQ", "en")
	if err != nil {
		t.Fatalf("FetchTranscript() unexpected error: %v", err)
	}
	want := "Hello & welcome to the video"
	if got != want {
		t.Errorf("FetchTranscript() = %q, want %q", got, want)
	}
}

func TestFetchTranscriptNoCaptions(t *testing.T) {
	client := NewClient(&http.Client{
		Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			return jsonResponse(`{"playabilityStatus": {"status": "OK"}}`), nil
		}),
	})

	_, err := client.FetchTranscript(context.Background(), "dQw4w9WgXcQ", "en")
	if !errors.Is(err, ErrNoTranscript) {
		t.Errorf("FetchTranscript() error = %v, want ErrNoTranscript", err)
	}
}

func TestFetchTranscriptVideoUnavailable(t *testing.T) {
	client := NewClient(&http.Client{
		Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			return jsonResponse(`{"playabilityStatus": {"status": "ERROR", "reason": "Video unavailable"}}`), nil
		}),
	})

	_, err := client.FetchTranscript(context.Background(), "dQw4w9WgXcQ", "en")
	if !errors.Is(err, ErrVideoUnavailable) {
		t.Errorf("FetchTranscript() error = %v, want ErrVideoUnavailable", err)
	}
}

func TestFetchTranscriptTransportError(t *testing.T) {
	client := NewClient(&http.Client{
		Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			return nil, errors.New("connection refused")
		}),
	})

	_, err := client.FetchTranscript(context.Background(), "dQw4w9WgXcQ", "en")
	if !errors.Is(err, ErrNoTranscript) {
		t.Errorf("FetchTranscript() error = %v, want ErrNoTranscript", err)
	}
}
