package model

import "portfolio-backend/internal/shared/errors"

// ExperienceCreate is the payload for adding an experience entry. Order sets
// manual sort precedence, higher first.
type ExperienceCreate struct {
	Company      string   `json:"company"`
	Title        string   `json:"title"`
	Period       string   `json:"period"`
	Location     string   `json:"location"`
	Achievements []string `json:"achievements"`
	Order        int      `json:"order"`
}

func (e *ExperienceCreate) Validate() error {
	if e.Company == "" {
		return errors.NewValidationError("company is required")
	}
	if e.Title == "" {
		return errors.NewValidationError("title is required")
	}
	return nil
}

func (e *ExperienceCreate) Document() Document {
	return Document{
		"company":      e.Company,
		"title":        e.Title,
		"period":       e.Period,
		"location":     e.Location,
		"achievements": emptyIfNil(e.Achievements),
		"order":        e.Order,
	}
}
