package model

import "portfolio-backend/internal/shared/errors"

// SkillCreate is the payload for adding a skill. Duplicate (category, name)
// pairs are allowed.
type SkillCreate struct {
	Category string  `json:"category"`
	Name     string  `json:"name"`
	Level    *string `json:"level"`
}

func (s *SkillCreate) Validate() error {
	if s.Category == "" {
		return errors.NewValidationError("category is required")
	}
	if s.Name == "" {
		return errors.NewValidationError("name is required")
	}
	return nil
}

func (s *SkillCreate) Document() Document {
	doc := Document{
		"category": s.Category,
		"name":     s.Name,
	}
	if s.Level != nil {
		doc["level"] = *s.Level
	}
	return doc
}
