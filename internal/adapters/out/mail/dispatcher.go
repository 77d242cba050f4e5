// Package mail implements the MailDispatcher port. The real mail provider
// lives outside this service; the log dispatcher records what would have
// been sent and is what local and test deployments run with.
package mail

import (
	"context"
	"log/slog"
)

// LogDispatcher writes outgoing mail to the log instead of sending it.
type LogDispatcher struct {
	logger *slog.Logger
}

// NewLogDispatcher creates a dispatcher that only logs.
func NewLogDispatcher(logger *slog.Logger) *LogDispatcher {
	return &LogDispatcher{
		logger: logger.With("component", "mail_dispatcher"),
	}
}

// Send logs the mail and reports success.
func (d *LogDispatcher) Send(ctx context.Context, recipient, subject, body string) error {
	d.logger.InfoContext(ctx, "Mail dispatched",
		"recipient", recipient, "subject", subject, "body_len", len(body))
	return nil
}
