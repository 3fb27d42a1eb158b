package gateway

import "errors"

var (
	// ErrAuth means the provider rejected the credential: invalid key,
	// revoked key, or exhausted quota.
	ErrAuth = errors.New("gateway: credential rejected")

	// ErrTransport covers connectivity and response parsing failures
	// unrelated to the credential.
	ErrTransport = errors.New("gateway: request failed")
)
