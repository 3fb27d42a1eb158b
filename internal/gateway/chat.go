package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"course-analyzer/internal/keypool"
	"course-analyzer/internal/logger"
)

const defaultChatTimeout = 10 * time.Minute

type chatGateway struct {
	baseURL    string
	model      string
	httpClient *http.Client
	logger     logger.Logger
}

// ChatOption customizes the chat gateway.
type ChatOption func(*chatGateway)

// WithHTTPClient overrides the default HTTP client (useful for tests).
func WithHTTPClient(client *http.Client) ChatOption {
	return func(g *chatGateway) {
		if client != nil {
			g.httpClient = client
		}
	}
}

// NewChat creates a Gateway speaking the OpenAI-style /chat/completions
// protocol, which covers DeepSeek and compatible providers.
func NewChat(baseURL, model string, log logger.Logger, opts ...ChatOption) Gateway {
	g := &chatGateway{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		model:      model,
		httpClient: &http.Client{Timeout: defaultChatTimeout},
		logger:     log,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
}

func (g *chatGateway) Invoke(ctx context.Context, prompt string, cred keypool.Credential) (Result, error) {
	endpoint, err := url.JoinPath(g.baseURL, "/chat/completions")
	if err != nil {
		return Result{}, fmt.Errorf("%w: build url: %v", ErrTransport, err)
	}

	encoded, err := json.Marshal(chatCompletionRequest{
		Model:       g.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: 0.2,
	})
	if err != nil {
		return Result{}, fmt.Errorf("%w: encode request: %v", ErrTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return Result{}, fmt.Errorf("%w: build request: %v", ErrTransport, err)
	}
	req.Header.Set("Authorization", "Bearer "+cred.Secret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("%w: read body: %v", ErrTransport, err)
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		g.logger.Debug(ctx, "Chat request with key %d failed: http %d", cred.Index, resp.StatusCode)
		return classifyChatStatus(resp.StatusCode, body)
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return Result{}, fmt.Errorf("%w: decode response: %v", ErrTransport, err)
	}
	if completion.Error != nil {
		return Result{}, fmt.Errorf("%w: api error: %s", ErrTransport, strings.TrimSpace(completion.Error.Message))
	}
	if len(completion.Choices) == 0 {
		return Result{}, fmt.Errorf("%w: empty choices", ErrTransport)
	}

	content := strings.TrimSpace(completion.Choices[0].Message.Content)
	if content == "" {
		return Result{}, fmt.Errorf("%w: empty content", ErrTransport)
	}

	return Result{Text: content}, nil
}

// classifyChatStatus maps non-2xx responses onto the gateway taxonomy. Size
// rejections come back as 400s with free-form wording, so this is the same
// kind of heuristic the Gemini boundary uses.
func classifyChatStatus(status int, body []byte) (Result, error) {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusTooManyRequests:
		return Result{}, fmt.Errorf("%w: http %d: %s", ErrAuth, status, strings.TrimSpace(string(body)))
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge:
		msg := strings.ToLower(string(body))
		if strings.Contains(msg, "token") || strings.Contains(msg, "context length") || strings.Contains(msg, "too long") {
			return Result{TokenLimited: true}, nil
		}
	}
	return Result{}, fmt.Errorf("%w: http %d: %s", ErrTransport, status, strings.TrimSpace(string(body)))
}
