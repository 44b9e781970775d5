package textgen

import (
	"context"
	"fmt"
	"time"

	"careerforge/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"go.uber.org/zap"
)

// GeminiGenerator implements domain.TextGenerator against Google's Gemini
// models through langchaingo.
type GeminiGenerator struct {
	llm     *googleai.GoogleAI
	timeout time.Duration
	logger  *zap.Logger
}

// NewGeminiGenerator creates a new instance of GeminiGenerator.
// Every Generate call is bounded by timeout so a hung upstream cannot hang
// the request handler.
func NewGeminiGenerator(ctx context.Context, apiKey, modelName string, timeout time.Duration, logger *zap.Logger) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key cannot be empty")
	}
	if modelName == "" {
		return nil, fmt.Errorf("gemini model name cannot be empty")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(modelName),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	logger.Info("Gemini text generator initialized", zap.String("model", modelName))
	return &GeminiGenerator{llm: llm, timeout: timeout, logger: logger}, nil
}

// Generate sends the prompt to the model and returns the raw text response.
// A single attempt is made; callers decide how failures surface.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	response, err := llms.GenerateFromSinglePrompt(callCtx, g.llm, prompt, llms.WithTemperature(0.4))
	if err != nil {
		if callCtx.Err() == context.DeadlineExceeded {
			g.logger.Error("Gemini request timed out", zap.Duration("timeout", g.timeout))
			return "", fmt.Errorf("gemini request timed out after %s: %w", g.timeout, err)
		}
		return "", fmt.Errorf("gemini call failed: %w", err)
	}

	if response == "" {
		return "", fmt.Errorf("gemini returned an empty response")
	}
	return response, nil
}

var _ domain.TextGenerator = (*GeminiGenerator)(nil)
