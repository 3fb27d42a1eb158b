package analyzer

import (
	"context"
	"fmt"
	"time"
)

// Event is a fire-and-forget progress message for a presentation consumer.
// The consumer only reads; it never touches the pool, catalog or ledger.
type Event struct {
	Time    time.Time
	Message string
}

// notify logs the message and offers it to the events channel. The send is
// non-blocking: a slow or absent consumer costs nothing, and the log line
// already captured the message.
func (a *implAnalyzer) notify(ctx context.Context, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	a.logger.Info(ctx, "%s", msg)

	if a.events == nil {
		return
	}
	select {
	case a.events <- Event{Time: time.Now(), Message: msg}:
	default:
	}
}
