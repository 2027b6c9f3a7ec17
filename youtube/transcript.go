package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"html"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	// ErrNoTranscript means the video has no usable caption track. The caller
	// recovers from this by falling back to page metadata.
	ErrNoTranscript = errors.New("no transcript available")

	// ErrVideoUnavailable means the provider reports the video itself as
	// missing or restricted. Unlike ErrNoTranscript this is terminal.
	ErrVideoUnavailable = errors.New("video unavailable")
)

// Client fetches transcripts through the Innertube ANDROID /player endpoint:
// one POST lists the caption tracks, a GET on the chosen track's timedtext
// URL returns the caption XML.
type Client struct {
	HTTPClient *http.Client
	PlayerURL  string
}

func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		HTTPClient: httpClient,
		PlayerURL:  playerURL,
	}
}

// FetchTranscript returns the video's transcript as a single string, caption
// fragments joined in original order with single spaces.
//
// Track preference: preferredLang (exact code or 2-letter prefix, manual
// before generated), then the first manually authored track, then the first
// track of any kind. Failures other than the distinguished unavailable
// condition degrade to ErrNoTranscript.
func (c *Client) FetchTranscript(ctx context.Context, videoID, preferredLang string) (string, error) {
	tracks, err := c.listTracks(ctx, videoID)
	if err != nil {
		if errors.Is(err, ErrVideoUnavailable) {
			return "", err
		}
		logrus.WithError(err).WithField("video_id", videoID).Warn("Listing caption tracks failed")
		return "", errors.Wrap(ErrNoTranscript, err.Error())
	}
	if len(tracks) == 0 {
		return "", ErrNoTranscript
	}

	track := selectTrack(tracks, preferredLang)

	text, err := c.fetchTimedText(ctx, track.BaseURL)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"video_id": videoID,
			"language": track.LanguageCode,
		}).Warn("Fetching caption track failed")
		return "", errors.Wrap(ErrNoTranscript, err.Error())
	}
	if text == "" {
		return "", ErrNoTranscript
	}

	source := "manual"
	if track.Generated() {
		source = "generated"
	}
	logrus.WithFields(logrus.Fields{
		"video_id": videoID,
		"language": track.LanguageCode,
		"source":   source,
	}).Info("Fetched transcript")

	return text, nil
}

// selectTrack picks the caption track to fetch. Enumeration order is the
// provider's order.
func selectTrack(tracks []CaptionTrack, preferredLang string) CaptionTrack {
	if preferredLang != "" {
		prefix := preferredLang
		if len(prefix) > 2 {
			prefix = prefix[:2]
		}
		match := func(generated bool) *CaptionTrack {
			for i, t := range tracks {
				if t.Generated() != generated {
					continue
				}
				if t.LanguageCode == preferredLang || strings.HasPrefix(t.LanguageCode, prefix) {
					return &tracks[i]
				}
			}
			return nil
		}
		if t := match(false); t != nil {
			return *t
		}
		if t := match(true); t != nil {
			return *t
		}
	}

	// Manual transcripts are usually higher quality.
	for _, t := range tracks {
		if !t.Generated() {
			return t
		}
	}
	return tracks[0]
}

func (c *Client) listTracks(ctx context.Context, videoID string) ([]CaptionTrack, error) {
	reqBody, err := json.Marshal(playerRequest{
		VideoID: videoID,
		Context: clientContext{
			Client: innertubeClient{
				ClientName:        "ANDROID",
				ClientVersion:     androidVersion,
				AndroidSdkVersion: 30,
				Hl:                "en",
				Gl:                "US",
			},
		},
		RacyCheckOk:    true,
		ContentCheckOk: true,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.PlayerURL+"?prettyPrint=false", bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", androidUA)
	req.Header.Set("X-Youtube-Client-Name", "3")
	req.Header.Set("X-Youtube-Client-Version", androidVersion)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "innertube player")
	}
	defer resp.Body.Close()

	var player playerResponse
	if err := json.NewDecoder(resp.Body).Decode(&player); err != nil {
		return nil, errors.Wrap(err, "decode player response")
	}

	if player.PlayabilityStatus != nil && player.PlayabilityStatus.Status == "ERROR" {
		return nil, errors.Wrap(ErrVideoUnavailable, player.PlayabilityStatus.Reason)
	}
	if player.Captions == nil {
		return nil, nil
	}
	return player.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks, nil
}

// fetchTimedText fetches and parses a timedtext XML caption URL, joining
// fragment texts with single spaces.
func (c *Client) fetchTimedText(ctx context.Context, baseURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", androidUA)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "fetch timedtext")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 512*1024))
	if err != nil {
		return "", err
	}

	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return "", errors.Wrap(err, "parse timedtext XML")
	}

	var sb strings.Builder
	for _, line := range tt.Lines {
		text := strings.TrimSpace(html.UnescapeString(line.Text))
		if text == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}
