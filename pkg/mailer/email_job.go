package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for delivery.
// The API renders the message before enqueueing; the worker only sends.
// Text is an optional plain-text fallback.
type EmailJob struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text,omitempty"`
	HTML    string `json:"html,omitempty"`
}
