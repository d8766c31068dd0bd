package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTestimonialPatchKeepsOmittedFields(t *testing.T) {
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	orig := Testimonial{Author: "Ana", Role: "Nurse", Country: "PT", Text: "Great", Image: "uploads/1.png", CreatedAt: created}
	now := created.Add(time.Hour)

	got := TestimonialPatch{Role: "Senior Nurse"}.Apply(orig, now)

	assert.Equal(t, "Ana", got.Author)
	assert.Equal(t, "Senior Nurse", got.Role)
	assert.Equal(t, "PT", got.Country)
	assert.Equal(t, "Great", got.Text)
	assert.Equal(t, "uploads/1.png", got.Image)
	assert.Equal(t, created, got.CreatedAt)
	require.NotNil(t, got.UpdatedAt)
	assert.Equal(t, now, *got.UpdatedAt)
	// original value is untouched
	assert.Equal(t, "Nurse", orig.Role)
}

func TestTestimonialPatchType(t *testing.T) {
	now := time.Now()
	cases := []struct {
		name   string
		stored string
		patch  string
		want   string
	}{
		{"default when both empty", "", "", DefaultTestimonialType},
		{"stored wins over default", "Education", "", "Education"},
		{"patch wins", "Education", "Employment", "Employment"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := TestimonialPatch{Type: tc.patch}.Apply(Testimonial{Type: tc.stored}, now)
			assert.Equal(t, tc.want, got.Type)
		})
	}
}

func TestTestimonialMissing(t *testing.T) {
	tm := Testimonial{Author: "a", Country: "c"}
	assert.Equal(t, []string{"role", "text"}, tm.Missing())
	tm.Role, tm.Text = "r", "t"
	assert.Empty(t, tm.Missing())
}

func TestSubmissionMissing(t *testing.T) {
	s := Submission{
		"name":   "A",
		"email":  "",
		"mobile": float64(0),
		"extra":  "kept",
	}
	assert.Equal(t, []string{"email", "mobile"}, s.Missing(KindEmployment.RequiredFields()...))

	s["email"] = "a@x.com"
	s["mobile"] = float64(123)
	assert.Empty(t, s.Missing(KindEmployment.RequiredFields()...))

	assert.Equal(t, []string{"phone"}, s.Missing(KindEducation.RequiredFields()...))
	s["phone"] = nil
	assert.Equal(t, []string{"phone"}, s.Missing(KindEducation.RequiredFields()...))
	s["phone"] = false
	assert.Equal(t, []string{"phone"}, s.Missing(KindEducation.RequiredFields()...))
}

func TestSubmissionString(t *testing.T) {
	s := Submission{
		"name":   "A",
		"mobile": float64(123),
		"skills": []interface{}{"welding", "driving"},
		"nil":    nil,
	}
	assert.Equal(t, "A", s.String("name"))
	assert.Equal(t, "123", s.String("mobile"))
	assert.Equal(t, "welding,driving", s.String("skills"))
	assert.Equal(t, "", s.String("nil"))
	assert.Equal(t, "", s.String("absent"))
}

func TestSubmissionWithID(t *testing.T) {
	s := Submission{"name": "A"}
	id := primitive.NewObjectID()

	got := s.WithID(id)
	assert.Equal(t, id, got["_id"])
	assert.Equal(t, "A", got["name"])
	_, touched := s["_id"]
	assert.False(t, touched, "receiver must not be modified")
}

func TestSubmissionKindTitle(t *testing.T) {
	assert.Equal(t, "Employment", KindEmployment.Title())
	assert.Equal(t, "Education", KindEducation.Title())
}
