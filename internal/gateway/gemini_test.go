package gateway

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"course-analyzer/internal/keypool"
)

func TestClassifyGeminiError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		tokenLimited bool
		wantErr      error
	}{
		{
			name:    "invalid api key",
			err:     fmt.Errorf("generate content: API key not valid. Please pass a valid API key"),
			wantErr: ErrAuth,
		},
		{
			name:    "quota exhausted",
			err:     fmt.Errorf("Error 429, Message: RESOURCE_EXHAUSTED: quota exceeded"),
			wantErr: ErrAuth,
		},
		{
			name:         "prompt too long",
			err:          fmt.Errorf("INVALID_ARGUMENT: the request is too long for the model"),
			tokenLimited: true,
		},
		{
			name:         "token count exceeds budget",
			err:          fmt.Errorf("input token count exceeds the maximum allowed"),
			tokenLimited: true,
		},
		{
			name:    "network failure",
			err:     fmt.Errorf("Post \"https://example.com\": connection refused"),
			wantErr: ErrTransport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := classifyGeminiError(tt.err)
			if res.TokenLimited != tt.tokenLimited {
				t.Errorf("TokenLimited = %v, want %v", res.TokenLimited, tt.tokenLimited)
			}
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestStubGateway(t *testing.T) {
	gw := NewStub("canned")
	res, err := gw.Invoke(context.Background(), "anything", keypool.Credential{})
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if res.Text != "canned" {
		t.Errorf("Text = %q, want canned", res.Text)
	}

	// The default reply is deterministic for identical prompts.
	gw = NewStub("")
	first, err := gw.Invoke(context.Background(), "same prompt", keypool.Credential{})
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	second, _ := gw.Invoke(context.Background(), "same prompt", keypool.Credential{})
	if first.Text != second.Text {
		t.Errorf("stub replies differ: %q vs %q", first.Text, second.Text)
	}
}
