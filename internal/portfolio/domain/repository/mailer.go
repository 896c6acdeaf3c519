package repository

// EmailMessage is one renderable email document. TextBody may be empty for
// HTML-only messages; when both are set the transport sends a multipart
// alternative message.
type EmailMessage struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// Mailer delivers a single message over the configured transport.
type Mailer interface {
	Send(msg EmailMessage) error
}
