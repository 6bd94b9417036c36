package application

import "context"

// Notifier delivers a rendered message to an email address. The send is
// awaited: a failed send fails the operation that requested it.
type Notifier interface {
	Send(ctx context.Context, to, subject, html string) error
}
