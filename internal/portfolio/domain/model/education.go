package model

import "portfolio-backend/internal/shared/errors"

// EducationCreate is the payload for adding an education entry.
type EducationCreate struct {
	Degree   string `json:"degree"`
	School   string `json:"school"`
	Period   string `json:"period"`
	Location string `json:"location"`
}

func (e *EducationCreate) Validate() error {
	if e.Degree == "" {
		return errors.NewValidationError("degree is required")
	}
	if e.School == "" {
		return errors.NewValidationError("school is required")
	}
	return nil
}

func (e *EducationCreate) Document() Document {
	return Document{
		"degree":   e.Degree,
		"school":   e.School,
		"period":   e.Period,
		"location": e.Location,
	}
}
