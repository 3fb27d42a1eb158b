package keypool

import (
	"errors"
	"strings"
)

// ErrExhausted is returned by Active when every key in the pool has been
// disabled.
var ErrExhausted = errors.New("keypool: no active keys remain")

// Credential is one usable API key drawn from the pool. Index identifies the
// pool slot it came from, for logging.
type Credential struct {
	Secret string
	Index  int
}

type slot struct {
	secret string
	active bool
}

// Pool rotates through a fixed set of API keys. Keys that hit their quota or
// are rejected by the provider get disabled and are never handed out again
// for the lifetime of the pool.
type Pool struct {
	slots  []slot
	cursor int
}

// Parse splits a newline-separated key list into secrets. Blank and
// whitespace-only lines are dropped; duplicate lines are kept as distinct
// entries in first-appearance order.
func Parse(input string) []string {
	var secrets []string
	for _, line := range strings.Split(input, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			secrets = append(secrets, s)
		}
	}
	return secrets
}

// New creates a Pool with every key active.
func New(secrets []string) *Pool {
	slots := make([]slot, 0, len(secrets))
	for _, s := range secrets {
		if s = strings.TrimSpace(s); s != "" {
			slots = append(slots, slot{secret: s, active: true})
		}
	}
	return &Pool{slots: slots, cursor: -1}
}

// Active returns the next active key, scanning circularly from the slot after
// the cursor so that healthy keys are used round-robin in insertion order.
// The cursor stays on the returned slot until the next call. When no keys
// remain active it returns ErrExhausted and leaves the cursor untouched.
func (p *Pool) Active() (Credential, error) {
	n := len(p.slots)
	if n == 0 {
		return Credential{}, ErrExhausted
	}

	for i := 1; i <= n; i++ {
		idx := (p.cursor + i) % n
		if p.slots[idx].active {
			p.cursor = idx
			return Credential{Secret: p.slots[idx].secret, Index: idx}, nil
		}
	}

	return Credential{}, ErrExhausted
}

// DisableCurrent marks the key at the cursor inactive. It is idempotent and a
// no-op on an empty pool or before the first Active call. The cursor is not
// advanced; the next Active call performs the rotation.
func (p *Pool) DisableCurrent() {
	if len(p.slots) == 0 || p.cursor < 0 {
		return
	}
	p.slots[p.cursor].active = false
}

// ActiveCount reports how many keys are still usable.
func (p *Pool) ActiveCount() int {
	count := 0
	for _, s := range p.slots {
		if s.active {
			count++
		}
	}
	return count
}

// Size reports the total number of pool slots, disabled ones included.
func (p *Pool) Size() int {
	return len(p.slots)
}
