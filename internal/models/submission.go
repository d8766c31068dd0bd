package models

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubmissionKind names one of the public inquiry forms.
type SubmissionKind string

const (
	KindEmployment SubmissionKind = "employment"
	KindEducation  SubmissionKind = "education"
)

// RequiredFields returns the keys a submission of kind k must carry.
func (k SubmissionKind) RequiredFields() []string {
	switch k {
	case KindEmployment:
		return []string{"name", "email", "mobile"}
	case KindEducation:
		return []string{"name", "email", "phone"}
	}
	return nil
}

// Title is the human label used in notification subjects.
func (k SubmissionKind) Title() string {
	switch k {
	case KindEmployment:
		return "Employment"
	case KindEducation:
		return "Education"
	}
	if k == "" {
		return ""
	}
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}

// Submission is a free-form form document. A few keys are required per kind,
// everything else the client sends is stored verbatim.
type Submission map[string]interface{}

// Missing reports which of keys are absent or falsy (null, "", false, 0).
func (s Submission) Missing(keys ...string) []string {
	var out []string
	for _, k := range keys {
		if !truthy(s[k]) {
			out = append(out, k)
		}
	}
	return out
}

// WithID returns a copy of s carrying the stored document id under "_id".
func (s Submission) WithID(id primitive.ObjectID) Submission {
	out := make(Submission, len(s)+1)
	for k, v := range s {
		out[k] = v
	}
	out["_id"] = id
	return out
}

// String renders the value under key for display; absent keys render empty.
func (s Submission) String(key string) string {
	v, ok := s[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case []interface{}:
		return joinValues(t)
	case primitive.A:
		return joinValues(t)
	}
	return fmt.Sprint(v)
}

func joinValues(vals []interface{}) string {
	parts := make([]string, 0, len(vals))
	for _, p := range vals {
		parts = append(parts, fmt.Sprint(p))
	}
	return strings.Join(parts, ",")
}

func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0
	case float32:
		return t != 0
	case int:
		return t != 0
	case int32:
		return t != 0
	case int64:
		return t != 0
	}
	return true
}
