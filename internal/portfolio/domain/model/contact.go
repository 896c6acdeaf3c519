package model

import "portfolio-backend/internal/shared/errors"

// ContactStatusNew is the lifecycle status stamped on every submission.
// Messages are never updated or deleted through this API.
const ContactStatusNew = "new"

// ContactCreate is a contact form submission.
type ContactCreate struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (c *ContactCreate) Validate() error {
	switch {
	case c.Name == "":
		return errors.NewValidationError("name is required")
	case c.Email == "":
		return errors.NewValidationError("email is required")
	case c.Subject == "":
		return errors.NewValidationError("subject is required")
	case c.Message == "":
		return errors.NewValidationError("message is required")
	}
	return nil
}

func (c *ContactCreate) Document() Document {
	return Document{
		"name":    c.Name,
		"email":   c.Email,
		"subject": c.Subject,
		"message": c.Message,
	}
}
