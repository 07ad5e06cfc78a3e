package mail

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// NoopSender logs sends without delivering. Used in development when no
// provider key is configured.
type NoopSender struct{}

// NewNoopSender creates a NoopSender.
func NewNoopSender() *NoopSender {
	return &NoopSender{}
}

// Send logs the message and returns a synthetic id.
func (s *NoopSender) Send(_ context.Context, msg Message) (string, error) {
	slog.Info("mail send skipped (no provider configured)",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
	)
	return fmt.Sprintf("noop-%d", time.Now().UnixNano()), nil
}
