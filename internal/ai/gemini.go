package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// GeminiGenerator talks to the Gemini API. The system prompt instructs the
// model to source current laws and schemes; the SDK exposes no search
// grounding tool, so sourcing stays prompt-level.
type GeminiGenerator struct {
	client      *genai.Client
	model       string
	maxTokens   int32
	temperature float32
	logger      *zap.Logger
}

func NewGeminiGenerator(ctx context.Context, apiKey, model string, maxTokens int, temperature float64, logger *zap.Logger) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiGenerator{
		client:      client,
		model:       model,
		maxTokens:   int32(maxTokens),
		temperature: float32(temperature),
		logger:      logger,
	}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, userID int64, prompt string) (string, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(g.temperature)
	model.SetTopP(0.95)
	model.SetTopK(40)
	model.SetMaxOutputTokens(g.maxTokens)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(SystemPrompt)},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		g.logger.Error("Failed to get Gemini response",
			zap.Error(err),
			zap.Int64("user_id", userID))
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := collectText(resp)
	if text == "" {
		return "", fmt.Errorf("empty response from model %s", g.model)
	}
	return text, nil
}

func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}

func collectText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return strings.TrimSpace(sb.String())
}
