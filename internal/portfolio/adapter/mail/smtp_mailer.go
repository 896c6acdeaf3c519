package mail

import (
	"portfolio-backend/internal/portfolio/domain/repository"

	gomail "gopkg.in/gomail.v2"
)

// SMTPMailer delivers messages over an authenticated SMTP transport with
// STARTTLS, in the way the upstream mail provider expects.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer creates a mailer for the given transport configuration. The
// sender identity doubles as the username.
func NewSMTPMailer(host string, port int, email, password string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, email, password),
		from:   email,
	}
}

// Send delivers one message. Both bodies set means a multipart alternative
// message; an empty text body means HTML only.
func (m *SMTPMailer) Send(msg repository.EmailMessage) error {
	out := gomail.NewMessage()
	out.SetHeader("From", m.from)
	out.SetHeader("To", msg.To)
	out.SetHeader("Subject", msg.Subject)

	if msg.TextBody != "" {
		out.SetBody("text/plain", msg.TextBody)
		if msg.HTMLBody != "" {
			out.AddAlternative("text/html", msg.HTMLBody)
		}
	} else {
		out.SetBody("text/html", msg.HTMLBody)
	}

	return m.dialer.DialAndSend(out)
}

var _ repository.Mailer = (*SMTPMailer)(nil)
