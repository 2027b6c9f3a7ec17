package summarizer

import "context"

// Service generates text from a fully assembled prompt.
type Service interface {
	Summarize(ctx context.Context, prompt string) (string, error)
}
