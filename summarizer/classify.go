package summarizer

import (
	"fmt"
	"strings"
)

// FailureKind classifies why a generation call failed.
type FailureKind string

const (
	KindQuota   FailureKind = "quota"
	KindAuth    FailureKind = "auth"
	KindBlocked FailureKind = "blocked"
	KindOther   FailureKind = "other"
)

const (
	msgQuota   = "Gemini API quota exceeded. Please try again later."
	msgAuth    = "Invalid or unauthorized Gemini API key."
	msgBlocked = "The content was blocked by the generative service's safety filters."
)

// GenerationError is a classified generation failure. Message is safe to
// show to the user; Err keeps the provider's description.
type GenerationError struct {
	Kind    FailureKind
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	return e.Message
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Classify buckets a provider error by inspecting its description.
func Classify(err error) *GenerationError {
	desc := strings.ToLower(err.Error())

	switch {
	case strings.Contains(desc, "quota") ||
		strings.Contains(desc, "resource_exhausted") ||
		strings.Contains(desc, "rate limit") ||
		strings.Contains(desc, "429"):
		return &GenerationError{Kind: KindQuota, Message: msgQuota, Err: err}
	case strings.Contains(desc, "api key") ||
		strings.Contains(desc, "api_key") ||
		strings.Contains(desc, "permission_denied") ||
		strings.Contains(desc, "unauthenticated") ||
		strings.Contains(desc, "401") ||
		strings.Contains(desc, "403"):
		return &GenerationError{Kind: KindAuth, Message: msgAuth, Err: err}
	case strings.Contains(desc, "safety") ||
		strings.Contains(desc, "blocked"):
		return &GenerationError{Kind: KindBlocked, Message: msgBlocked, Err: err}
	default:
		return &GenerationError{
			Kind:    KindOther,
			Message: fmt.Sprintf("Error generating summary: %v", err),
			Err:     err,
		}
	}
}
