package validation

import "math"

// Validation bounds
const (
	// Grades are percentages
	GradeMin = 0.0
	GradeMax = 100.0

	// Name validation max length, matches the students table
	NameMaxLength  = 100
	EmailMaxLength = 255
)

// ValidGrade reports whether v is a finite grade within [GradeMin, GradeMax]
func ValidGrade(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	return v >= GradeMin && v <= GradeMax
}

// StringValidation checks a trimmed string value
type StringValidation struct {
	Value    string
	MaxLen   int
	Required bool
}

// NewStringValidation creates a new required string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Required && v.Value == "" {
		return false
	}
	if v.MaxLen > 0 && len(v.Value) > v.MaxLen {
		return false
	}
	return true
}
