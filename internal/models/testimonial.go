package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultTestimonialType applies when neither an update nor the stored record names a type.
const DefaultTestimonialType = "Employment"

// Testimonial is a user-contributed endorsement, optionally with an uploaded image.
type Testimonial struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Author    string             `json:"author" bson:"author"`
	Role      string             `json:"role" bson:"role"`
	Country   string             `json:"country" bson:"country"`
	Text      string             `json:"text" bson:"text"`
	Type      string             `json:"type,omitempty" bson:"type,omitempty"`
	Image     string             `json:"image,omitempty" bson:"image,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt *time.Time         `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// Missing lists the required fields that are empty.
func (t *Testimonial) Missing() []string {
	var out []string
	for _, f := range []struct{ name, val string }{
		{"author", t.Author}, {"role", t.Role}, {"country", t.Country}, {"text", t.Text},
	} {
		if f.val == "" {
			out = append(out, f.name)
		}
	}
	return out
}

// TestimonialPatch carries the fields of a partial update. Empty strings mean
// "keep the stored value".
type TestimonialPatch struct {
	Author  string
	Role    string
	Country string
	Text    string
	Type    string
	Image   string
}

// Apply merges p over t field by field and stamps UpdatedAt.
func (p TestimonialPatch) Apply(t Testimonial, now time.Time) Testimonial {
	t.Author = firstNonEmpty(p.Author, t.Author)
	t.Role = firstNonEmpty(p.Role, t.Role)
	t.Country = firstNonEmpty(p.Country, t.Country)
	t.Text = firstNonEmpty(p.Text, t.Text)
	t.Type = firstNonEmpty(p.Type, t.Type, DefaultTestimonialType)
	t.Image = firstNonEmpty(p.Image, t.Image)
	t.UpdatedAt = &now
	return t
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
