package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// CompletionResult carries the raw model reply plus token accounting.
type CompletionResult struct {
	Text       string
	TokensUsed int
}

type LLMService interface {
	Complete(ctx context.Context, prompt string, maxOutputTokens int32) (*CompletionResult, error)
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

type geminiService struct {
	client     *genai.Client
	modelName  string
	embedModel string
}

func NewGeminiService(apiKey, model string) (LLMService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is empty")
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	if model == "" {
		model = "gemini-2.5-flash"
	}

	return &geminiService{
		client:     client,
		modelName:  model,
		embedModel: "text-embedding-004",
	}, nil
}

// Complete implements LLMService. A low temperature favors deterministic
// output for both extraction and summarization.
func (g *geminiService) Complete(ctx context.Context, prompt string, maxOutputTokens int32) (*CompletionResult, error) {
	temperature := float32(0.2)
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: maxOutputTokens,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return nil, NewPipelineError(
			ErrUpstream,
			"AI service unavailable or returned invalid data.",
			fmt.Errorf("failed to generate content: %w", err),
		)
	}

	if resp == nil || resp.Text() == "" {
		return nil, NewPipelineError(
			ErrUpstream,
			"AI service unavailable or returned invalid data.",
			fmt.Errorf("empty completion response"),
		)
	}

	result := &CompletionResult{Text: resp.Text()}
	if resp.UsageMetadata != nil {
		result.TokensUsed = int(resp.UsageMetadata.TotalTokenCount)
	}

	return result, nil
}

// GenerateEmbedding implements LLMService.
func (g *geminiService) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	// The embedding model has its own input cap.
	if len(text) > 40000 {
		text = text[:40000]
	}

	result, err := g.client.Models.EmbedContent(ctx, g.embedModel, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if result == nil || len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("empty embedding result")
	}

	return result.Embeddings[0].Values, nil
}
