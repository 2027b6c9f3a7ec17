package youtube

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrNetwork means the watch page could not be reached at all (DNS, refused
// connection, timeout). Distinct from ErrVideoUnavailable, which means the
// page answered but reported the video missing.
var ErrNetwork = errors.New("network error fetching video page")

const defaultTitle = "Unknown Title"

// Metadata is the best-effort title/description pair scraped from a video's
// public watch page. Used only when no transcript exists.
type Metadata struct {
	Title       string
	Description string
}

// Text renders the two-field labeled block handed to the prompt builder.
func (m *Metadata) Text() string {
	return fmt.Sprintf("Video Title: %s\n\nVideo Description: %s", m.Title, m.Description)
}

var (
	titleRE       = regexp.MustCompile(`<title>(.*?)</title>`)
	descriptionRE = regexp.MustCompile(`"description":\{"simpleText":"(.*?)"\}`)
)

// Scraper fetches watch pages with a bounded timeout.
type Scraper struct {
	HTTPClient *http.Client
	WatchBase  string
}

func NewScraper(pageTimeout time.Duration) *Scraper {
	return &Scraper{
		HTTPClient: &http.Client{Timeout: pageTimeout},
		WatchBase:  "https://www.youtube.com/watch?v=",
	}
}

// FetchMetadata GETs the canonical watch page and extracts title and
// description. Missing fields default rather than fail; only transport
// errors and non-2xx statuses are reported.
func (s *Scraper) FetchMetadata(ctx context.Context, videoID string) (*Metadata, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.WatchBase+videoID, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(ErrNetwork, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Wrapf(ErrVideoUnavailable, "watch page returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 6*1024*1024))
	if err != nil {
		return nil, errors.Wrap(ErrNetwork, err.Error())
	}
	page := string(body)

	md := &Metadata{Title: defaultTitle}
	if m := titleRE.FindStringSubmatch(page); len(m) > 1 {
		md.Title = strings.TrimSuffix(m[1], " - YouTube")
	}
	if m := descriptionRE.FindStringSubmatch(page); len(m) > 1 {
		md.Description = CleanDescription(m[1])
	}

	logrus.WithFields(logrus.Fields{
		"video_id": videoID,
		"title":    md.Title,
	}).Info("Scraped video metadata")

	return md, nil
}

// CleanDescription turns literal \n sequences into newlines and drops the
// remaining backslash escape characters. Idempotent on already-clean text.
func CleanDescription(s string) string {
	s = strings.ReplaceAll(s, `\n`, "\n")
	return strings.ReplaceAll(s, `\`, "")
}
