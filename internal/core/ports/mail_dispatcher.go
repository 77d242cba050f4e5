package ports

import "context"

// MailDispatcher sends transactional mail to platform users. Delivery is
// best-effort and asynchronous to the triggering operation.
type MailDispatcher interface {
	Send(ctx context.Context, recipient, subject, body string) error
}
