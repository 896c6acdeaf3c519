package usecase

import (
	"fmt"
	"html"
	"time"

	"portfolio-backend/internal/portfolio/domain/model"
	"portfolio-backend/internal/portfolio/domain/repository"
	"portfolio-backend/internal/shared/logger"
)

// previewLimit bounds the message excerpt echoed in the auto-reply.
const previewLimit = 200

const submittedAtFormat = "2006-01-02 15:04:05 UTC"

// NotificationServiceInterface renders and attempts delivery of the two
// contact-form emails. Send outcomes are reported as booleans and never as
// errors; a failed delivery must not fail the enclosing request.
type NotificationServiceInterface interface {
	SendContactNotification(contact model.ContactCreate, submittedAt time.Time) bool
	SendAutoReply(contact model.ContactCreate) bool
}

// NotificationService implements NotificationServiceInterface over an
// authenticated mail transport. When constructed disabled (no credentials)
// every send is skipped and reported as success so the contact form keeps
// working unconfigured.
type NotificationService struct {
	mailer    repository.Mailer
	recipient string
	enabled   bool
	log       logger.Logger
}

// NewNotificationService creates the notification service. recipient is the
// fixed operator address for contact notifications.
func NewNotificationService(mailer repository.Mailer, recipient string, enabled bool, log logger.Logger) *NotificationService {
	return &NotificationService{
		mailer:    mailer,
		recipient: recipient,
		enabled:   enabled,
		log:       log.WithComponent("notification"),
	}
}

// SendContactNotification emails the operator about a new submission, in a
// plain-text and an HTML variant.
func (s *NotificationService) SendContactNotification(contact model.ContactCreate, submittedAt time.Time) bool {
	if !s.enabled {
		s.log.Warnf("SMTP credentials not configured - notification not sent")
		s.log.Infof("contact form submission (would email to %s): %s <%s> %q", s.recipient, contact.Name, contact.Email, contact.Subject)
		return true
	}

	msg := repository.EmailMessage{
		To:       s.recipient,
		Subject:  fmt.Sprintf("New Portfolio Contact: %s", contact.Subject),
		TextBody: renderNotificationText(contact, submittedAt),
		HTMLBody: renderNotificationHTML(contact, submittedAt),
	}

	if err := s.mailer.Send(msg); err != nil {
		s.log.Errorf("failed to send contact notification: %v", err)
		return false
	}

	s.log.Infof("contact notification sent to %s", s.recipient)
	return true
}

// SendAutoReply emails an acknowledgement to the submitter.
func (s *NotificationService) SendAutoReply(contact model.ContactCreate) bool {
	if !s.enabled {
		return true
	}

	msg := repository.EmailMessage{
		To:       contact.Email,
		Subject:  fmt.Sprintf("Thank you for contacting me - %s", contact.Name),
		HTMLBody: renderAutoReplyHTML(contact),
	}

	if err := s.mailer.Send(msg); err != nil {
		s.log.Errorf("failed to send auto-reply: %v", err)
		return false
	}

	s.log.Infof("auto-reply sent to %s", contact.Email)
	return true
}

// messagePreview returns the first 200 characters of a message, with an
// ellipsis marker only when the message was actually truncated.
func messagePreview(message string) string {
	runes := []rune(message)
	if len(runes) > previewLimit {
		return string(runes[:previewLimit]) + "..."
	}
	return message
}

func renderNotificationText(contact model.ContactCreate, submittedAt time.Time) string {
	return fmt.Sprintf(`New Portfolio Contact Form Submission

Name: %s
Email: %s
Subject: %s

Message:
%s

Submitted: %s
Reply to: %s
`,
		contact.Name, contact.Email, contact.Subject, contact.Message,
		submittedAt.UTC().Format(submittedAtFormat), contact.Email)
}

func renderNotificationHTML(contact model.ContactCreate, submittedAt time.Time) string {
	name := html.EscapeString(contact.Name)
	email := html.EscapeString(contact.Email)
	subject := html.EscapeString(contact.Subject)
	message := html.EscapeString(contact.Message)

	return fmt.Sprintf(`<html>
  <body style="font-family: Arial, sans-serif; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
      <h2 style="color: #7C3AED;">New Contact Form Submission</h2>

      <div style="background: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
        <h3 style="margin-top: 0; color: #333;">Contact Details</h3>
        <p><strong>Name:</strong> %s</p>
        <p><strong>Email:</strong> %s</p>
        <p><strong>Subject:</strong> %s</p>
      </div>

      <div style="background: #fff; padding: 20px; border: 1px solid #e0e0e0; border-radius: 8px;">
        <h3 style="margin-top: 0; color: #333;">Message</h3>
        <p style="line-height: 1.6; white-space: pre-wrap;">%s</p>
      </div>

      <div style="margin-top: 20px; padding: 15px; background: #f0f4ff; border-radius: 8px;">
        <p style="margin: 0; font-size: 14px; color: #666;">
          <strong>Submitted:</strong> %s<br>
          <strong>Reply to:</strong> <a href="mailto:%s">%s</a>
        </p>
      </div>

      <hr style="margin: 30px 0; border: none; border-top: 1px solid #e0e0e0;">
      <p style="font-size: 12px; color: #999;">
        This email was sent from your portfolio contact form.
      </p>
    </div>
  </body>
</html>`,
		name, email, subject, message,
		submittedAt.UTC().Format(submittedAtFormat), email, email)
}

func renderAutoReplyHTML(contact model.ContactCreate) string {
	name := html.EscapeString(contact.Name)
	subject := html.EscapeString(contact.Subject)
	preview := html.EscapeString(messagePreview(contact.Message))

	return fmt.Sprintf(`<html>
  <body style="font-family: Arial, sans-serif; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
      <h2 style="color: #7C3AED;">Thank you for reaching out!</h2>

      <p>Hi %s,</p>

      <p>Thank you for your message regarding "<strong>%s</strong>". I've received your contact form submission and will get back to you within 24 hours.</p>

      <div style="background: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
        <h3 style="margin-top: 0;">Your Message Summary</h3>
        <p><strong>Subject:</strong> %s</p>
        <p><strong>Message:</strong></p>
        <p style="font-style: italic; color: #666;">%s</p>
      </div>

      <p>In the meantime, feel free to:</p>
      <ul>
        <li>Check out my <a href="https://github.com">GitHub</a> for more projects</li>
        <li>Connect with me on <a href="https://linkedin.com/in/devang-shah">LinkedIn</a></li>
        <li>Email me directly at <a href="mailto:shahdevang1910@gmail.com">shahdevang1910@gmail.com</a></li>
      </ul>

      <p>Best regards,<br><strong>Devang Shah</strong></p>

      <hr style="margin: 30px 0; border: none; border-top: 1px solid #e0e0e0;">
      <p style="font-size: 12px; color: #999;">
        This is an automated response from my portfolio website.
      </p>
    </div>
  </body>
</html>`,
		name, subject, subject, preview)
}

var _ NotificationServiceInterface = (*NotificationService)(nil)
