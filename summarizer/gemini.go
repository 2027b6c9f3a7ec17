package summarizer

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

// GeminiService calls the Gemini API to generate summaries.
type GeminiService struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiService(ctx context.Context, apiKey, modelName string) (*GeminiService, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &GeminiService{
		client: client,
		model:  client.GenerativeModel(modelName),
	}, nil
}

func (s *GeminiService) Close() error {
	return s.client.Close()
}

// Summarize sends the prompt to Gemini and returns the generated text.
// Failures come back as *GenerationError so callers can tell quota, key, and
// safety problems apart.
func (s *GeminiService) Summarize(ctx context.Context, prompt string) (string, error) {
	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		genErr := Classify(err)
		logrus.WithError(err).WithField("kind", genErr.Kind).Error("Gemini generation failed")
		return "", genErr
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockReasonUnspecified {
		return "", &GenerationError{
			Kind:    KindBlocked,
			Message: msgBlocked,
		}
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		if len(resp.Candidates) > 0 && resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
			return "", &GenerationError{Kind: KindBlocked, Message: msgBlocked}
		}
		return "", &GenerationError{
			Kind:    KindOther,
			Message: "Error generating summary: the model returned no content",
		}
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	return strings.TrimSpace(sb.String()), nil
}
