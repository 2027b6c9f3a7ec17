package youtube

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// ErrNoVideoID means no 11-character video identifier could be found in the
// input. Callers treat this as a client input error.
var ErrNoVideoID = errors.New("no video ID found in URL")

// URL shapes recognized for identifier extraction:
//   - youtube.com/watch?v=VIDEO_ID (including m.youtube.com and extra params)
//   - youtu.be/VIDEO_ID
//   - youtube.com/embed/VIDEO_ID
//   - youtube.com/v/VIDEO_ID
//   - youtube.com/shorts/VIDEO_ID
//   - youtube.com/live/VIDEO_ID
var idPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:m\.)?youtube\.com/watch\?(?:[^#]*&)?v=([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/(?:embed|v)/([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/shorts/([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/live/([A-Za-z0-9_-]{11})`),
}

var validID = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// ExtractVideoID pulls the 11-character video identifier out of a YouTube URL.
func ExtractVideoID(rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", ErrNoVideoID
	}

	for _, pattern := range idPatterns {
		if matches := pattern.FindStringSubmatch(rawURL); len(matches) > 1 {
			return matches[1], nil
		}
	}

	// Loose fallback: pull the token after a v= parameter, a /v/ path
	// segment, or a youtu.be path, and accept it only at exactly 11 chars.
	if id := looseToken(rawURL, "v="); validID.MatchString(id) {
		return id, nil
	}
	if id := looseToken(rawURL, "/v/"); validID.MatchString(id) {
		return id, nil
	}
	if id := looseToken(rawURL, "youtu.be/"); validID.MatchString(id) {
		return id, nil
	}

	return "", errors.Wrap(ErrNoVideoID, rawURL)
}

func looseToken(rawURL, marker string) string {
	idx := strings.Index(rawURL, marker)
	if idx < 0 {
		return ""
	}
	token := rawURL[idx+len(marker):]
	if end := strings.IndexAny(token, "&?#/"); end >= 0 {
		token = token[:end]
	}
	return token
}
