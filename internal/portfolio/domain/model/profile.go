package model

// ProfileUpdate is a partial patch against the singleton profile document.
// Nil fields are left untouched.
type ProfileUpdate struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Tagline  *string `json:"tagline"`
	About    *string `json:"about"`
	Location *string `json:"location"`
	Github   *string `json:"github"`
	Linkedin *string `json:"linkedin"`
}

// Fields returns only the provided (non-nil) fields, keyed by their stored
// field names.
func (p *ProfileUpdate) Fields() Document {
	fields := Document{}
	set := func(key string, v *string) {
		if v != nil {
			fields[key] = *v
		}
	}
	set("name", p.Name)
	set("email", p.Email)
	set("tagline", p.Tagline)
	set("about", p.About)
	set("location", p.Location)
	set("github", p.Github)
	set("linkedin", p.Linkedin)
	return fields
}
