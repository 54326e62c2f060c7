package services

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GenerateResult is the normalized outcome of one model call. Either Text is
// set, or Blocked is true with the content-policy reason; transport and auth
// faults are returned as errors instead.
type GenerateResult struct {
	Text        string
	Blocked     bool
	BlockReason string
}

type GeminiService interface {
	Generate(ctx context.Context, prompt string) (*GenerateResult, error)
}

type geminiService struct {
	client    *genai.Client
	modelName string
}

func NewGeminiService(apiKey, modelName string) (GeminiService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:    client,
		modelName: modelName,
	}, nil
}

// Generate implements GeminiService. One attempt per call: no retries, no
// backoff. A failed call is terminal for the triggering action and the
// caller decides whether to surface or swallow it.
func (g *geminiService) Generate(ctx context.Context, prompt string) (*GenerateResult, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), nil)
	if err != nil {
		if strings.Contains(err.Error(), "API key not valid") {
			return nil, fmt.Errorf("gemini api error: %w (please check if your Gemini API key is correct and valid)", err)
		}
		return nil, fmt.Errorf("gemini api error: %w", err)
	}

	if resp == nil {
		return nil, fmt.Errorf("received no valid response from the AI")
	}

	if text := resp.Text(); text != "" {
		return &GenerateResult{Text: text}, nil
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return &GenerateResult{
			Blocked:     true,
			BlockReason: string(resp.PromptFeedback.BlockReason),
		}, nil
	}

	return nil, fmt.Errorf("received no valid response from the AI")
}
