package gateway

import (
	"context"
	"fmt"

	"course-analyzer/internal/keypool"
)

type stubGateway struct {
	reply string
}

// NewStub creates a Gateway that returns a canned summary without contacting
// any provider. Useful for dry runs over a course tree and for tests.
func NewStub(reply string) Gateway {
	return &stubGateway{reply: reply}
}

func (s *stubGateway) Invoke(ctx context.Context, prompt string, cred keypool.Credential) (Result, error) {
	if s.reply != "" {
		return Result{Text: s.reply}, nil
	}
	return Result{Text: fmt.Sprintf("(stub) accepted a %d-character prompt", len(prompt))}, nil
}
