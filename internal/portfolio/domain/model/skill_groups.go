package model

import (
	"bytes"
	"encoding/json"
)

// SkillGroups maps category names to ordered skill names. Categories keep
// first-seen order and survive JSON marshaling in that order, matching the
// iteration order of the underlying listing.
type SkillGroups struct {
	order  []string
	groups map[string][]string
}

func NewSkillGroups() *SkillGroups {
	return &SkillGroups{groups: map[string][]string{}}
}

// Add appends a skill name under its category, registering the category on
// first sight.
func (g *SkillGroups) Add(category, name string) {
	if _, seen := g.groups[category]; !seen {
		g.order = append(g.order, category)
	}
	g.groups[category] = append(g.groups[category], name)
}

// Categories returns category names in first-seen order.
func (g *SkillGroups) Categories() []string {
	return g.order
}

// Names returns the skill names of a category in listing order.
func (g *SkillGroups) Names(category string) []string {
	return g.groups[category]
}

// MarshalJSON writes the mapping as a JSON object with categories in
// first-seen order.
func (g *SkillGroups) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, category := range g.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(category)
		if err != nil {
			return nil, err
		}
		names, err := json.Marshal(g.groups[category])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(names)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
