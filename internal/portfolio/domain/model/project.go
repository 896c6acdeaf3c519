package model

import "portfolio-backend/internal/shared/errors"

// ProjectLinks holds the optional external references of a project.
type ProjectLinks struct {
	Repo *string `json:"repo"`
	Live *string `json:"live"`
	Case *string `json:"case"`
}

// ProjectDetails is the case-study block of a project.
type ProjectDetails struct {
	Problem  string   `json:"problem"`
	Approach string   `json:"approach"`
	Result   string   `json:"result"`
	Features []string `json:"features"`
}

// ProjectCreate is the payload for creating a project.
type ProjectCreate struct {
	Title       string         `json:"title"`
	Summary     string         `json:"summary"`
	Description string         `json:"description"`
	Period      string         `json:"period"`
	Stack       []string       `json:"stack"`
	Tags        []string       `json:"tags"`
	Category    string         `json:"category"`
	Cover       *string        `json:"cover"`
	Links       ProjectLinks   `json:"links"`
	Details     ProjectDetails `json:"details"`
	Featured    bool           `json:"featured"`
}

func (p *ProjectCreate) Validate() error {
	switch {
	case p.Title == "":
		return errors.NewValidationError("title is required")
	case p.Summary == "":
		return errors.NewValidationError("summary is required")
	case p.Description == "":
		return errors.NewValidationError("description is required")
	case p.Period == "":
		return errors.NewValidationError("period is required")
	case p.Category == "":
		return errors.NewValidationError("category is required")
	}
	return nil
}

func (p *ProjectCreate) Document() Document {
	links := Document{}
	if p.Links.Repo != nil {
		links["repo"] = *p.Links.Repo
	}
	if p.Links.Live != nil {
		links["live"] = *p.Links.Live
	}
	if p.Links.Case != nil {
		links["case"] = *p.Links.Case
	}

	doc := Document{
		"title":       p.Title,
		"summary":     p.Summary,
		"description": p.Description,
		"period":      p.Period,
		"stack":       emptyIfNil(p.Stack),
		"tags":        emptyIfNil(p.Tags),
		"category":    p.Category,
		"links":       links,
		"details": Document{
			"problem":  p.Details.Problem,
			"approach": p.Details.Approach,
			"result":   p.Details.Result,
			"features": emptyIfNil(p.Details.Features),
		},
		"featured": p.Featured,
	}
	if p.Cover != nil {
		doc["cover"] = *p.Cover
	}
	return doc
}

// ProjectFilter holds the equality predicates of a project listing.
type ProjectFilter struct {
	Featured *bool
	Category string
	Limit    int64
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
