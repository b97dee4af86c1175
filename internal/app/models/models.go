package models

import (
	"fmt"
	"strings"
)

// Subject identifies which grade collection an operation targets
type Subject string

const (
	SubjectMath    Subject = "math"
	SubjectScience Subject = "science"
	SubjectHistory Subject = "history"
)

// Subjects lists every known subject in gradebook order
var Subjects = []Subject{SubjectMath, SubjectScience, SubjectHistory}

// ParseSubject resolves a gradeType value. Matching ignores case and surrounding whitespace.
func ParseSubject(value string) (Subject, error) {
	switch Subject(strings.ToLower(strings.TrimSpace(value))) {
	case SubjectMath:
		return SubjectMath, nil
	case SubjectScience:
		return SubjectScience, nil
	case SubjectHistory:
		return SubjectHistory, nil
	}
	return "", fmt.Errorf("unknown subject %q", value)
}

// IsValid reports whether s is one of the known subjects
func (s Subject) IsValid() bool {
	_, err := ParseSubject(string(s))
	return err == nil
}

func (s Subject) String() string {
	return string(s)
}
