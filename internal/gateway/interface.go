package gateway

import (
	"context"

	"course-analyzer/internal/keypool"
)

// Result is a successful gateway classification. TokenLimited marks prompts
// the provider rejected for exceeding its size budget; that is an outcome,
// not a failure.
type Result struct {
	Text         string
	TokenLimited bool
}

// Gateway sends a prompt to an AI provider using the supplied credential.
// Errors wrap ErrAuth when the credential itself is bad or exhausted, and
// ErrTransport for everything else.
type Gateway interface {
	Invoke(ctx context.Context, prompt string, cred keypool.Credential) (Result, error)
}
