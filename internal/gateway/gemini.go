package gateway

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"course-analyzer/internal/keypool"
	"course-analyzer/internal/logger"
)

type geminiGateway struct {
	model  string
	logger logger.Logger
}

// NewGemini creates a Gateway backed by the Gemini API. A fresh client is
// built per call because the credential changes with pool rotation.
func NewGemini(model string, log logger.Logger) Gateway {
	return &geminiGateway{
		model:  model,
		logger: log,
	}
}

func (g *geminiGateway) Invoke(ctx context.Context, prompt string, cred keypool.Credential) (Result, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cred.Secret,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return Result{}, fmt.Errorf("%w: create client: %v", ErrTransport, err)
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:    genai.Ptr[float32](0.2),
		ThinkingConfig: &genai.ThinkingConfig{ThinkingBudget: genai.Ptr[int32](0)},
	}

	result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		g.logger.Debug(ctx, "Gemini request with key %d failed: %v", cred.Index, err)
		return classifyGeminiError(err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return Result{}, fmt.Errorf("%w: empty response from Gemini", ErrTransport)
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	if text.Len() == 0 {
		return Result{}, fmt.Errorf("%w: empty response from Gemini", ErrTransport)
	}

	return Result{Text: strings.TrimSpace(text.String())}, nil
}

// classifyGeminiError maps the SDK's error text onto the gateway taxonomy.
// The provider reports quota, key and size problems as free-form messages, so
// this stays a heuristic string inspection confined to this boundary.
func classifyGeminiError(err error) (Result, error) {
	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "too long"),
		strings.Contains(msg, "token count") && strings.Contains(msg, "exceeds"),
		strings.Contains(msg, "input token"):
		return Result{TokenLimited: true}, nil

	case strings.Contains(msg, "api key") && (strings.Contains(msg, "invalid") || strings.Contains(msg, "not valid")),
		strings.Contains(msg, "permission_denied"),
		strings.Contains(msg, "resource_exhausted"),
		strings.Contains(msg, "quota"),
		strings.Contains(msg, "429"),
		strings.Contains(msg, "401"),
		strings.Contains(msg, "403"):
		return Result{}, fmt.Errorf("%w: %v", ErrAuth, err)

	default:
		return Result{}, fmt.Errorf("%w: %v", ErrTransport, err)
	}
}
