package mailer

import (
	"context"

	"github.com/cinespot/cinespot-api/pkg/helpers"
)

// QueueNotifier hands rendered emails to the delivery queue. The publish
// is the awaited part: once the job is on the queue the notification
// counts as sent, and a failed publish counts as a failed send.
type QueueNotifier struct {
	Pub *helpers.RabbitPublisher
}

func NewQueueNotifier(pub *helpers.RabbitPublisher) *QueueNotifier {
	return &QueueNotifier{Pub: pub}
}

func (n *QueueNotifier) Send(ctx context.Context, to, subject, html string) error {
	return n.Pub.PublishJSON(ctx, EmailJob{To: to, Subject: subject, HTML: html})
}
