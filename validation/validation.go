package validation

import (
	"fmt"
	"net/url"
	"strings"
)

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateURL performs format-level checks on the submitted URL. Whether the
// URL actually names a video is decided later by identifier extraction; this
// only rejects input that cannot possibly be a link.
func ValidateURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return &ValidationError{Message: "error: URL is required"}
	}

	rawURL = strings.TrimSpace(rawURL)

	parsedURL, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return &ValidationError{Message: "error: invalid URL format"}
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return &ValidationError{Message: "error: URL must start with http or https"}
	}

	if parsedURL.Host == "" {
		return &ValidationError{Message: fmt.Sprintf("error: URL %q must have a host", rawURL)}
	}

	return nil
}
