package models

import "math"

// Gradebook is the derived view of a student with all grade collections.
// It is assembled on every read and never stored.
type Gradebook struct {
	ID            int64         `json:"id" example:"1"`
	Firstname     string        `json:"firstname" example:"Eric"`
	Lastname      string        `json:"lastname" example:"Roby"`
	EmailAddress  string        `json:"emailAddress" example:"eric.roby@luv2code_school.com"`
	FullName      string        `json:"fullName" example:"Eric Roby"`
	StudentGrades StudentGrades `json:"studentGrades"`
}

// StudentGrades holds the three subject collections and their summaries
type StudentGrades struct {
	MathGradeResults    []Grade `json:"mathGradeResults"`
	ScienceGradeResults []Grade `json:"scienceGradeResults"`
	HistoryGradeResults []Grade `json:"historyGradeResults"`

	MathGradeAverage    float64 `json:"mathGradeAverage" example:"92.5"`
	ScienceGradeAverage float64 `json:"scienceGradeAverage" example:"80"`
	HistoryGradeAverage float64 `json:"historyGradeAverage" example:"0"`

	MathGradeCount    int `json:"mathGradeCount" example:"2"`
	ScienceGradeCount int `json:"scienceGradeCount" example:"1"`
	HistoryGradeCount int `json:"historyGradeCount" example:"0"`
}

// NewGradebook builds the view from a student and its grades grouped by subject.
// Missing subjects become empty collections.
func NewGradebook(student Student, grades map[Subject][]Grade) *Gradebook {
	results := func(s Subject) []Grade {
		if g := grades[s]; g != nil {
			return g
		}
		return []Grade{}
	}

	mathGrades, scienceGrades, historyGrades := results(SubjectMath), results(SubjectScience), results(SubjectHistory)

	return &Gradebook{
		ID:           student.ID,
		Firstname:    student.Firstname,
		Lastname:     student.Lastname,
		EmailAddress: student.EmailAddress,
		FullName:     student.FullName(),
		StudentGrades: StudentGrades{
			MathGradeResults:    mathGrades,
			ScienceGradeResults: scienceGrades,
			HistoryGradeResults: historyGrades,
			MathGradeAverage:    Average(mathGrades),
			ScienceGradeAverage: Average(scienceGrades),
			HistoryGradeAverage: Average(historyGrades),
			MathGradeCount:      len(mathGrades),
			ScienceGradeCount:   len(scienceGrades),
			HistoryGradeCount:   len(historyGrades),
		},
	}
}

// Results returns the collection for a subject
func (sg StudentGrades) Results(subject Subject) []Grade {
	switch subject {
	case SubjectMath:
		return sg.MathGradeResults
	case SubjectScience:
		return sg.ScienceGradeResults
	case SubjectHistory:
		return sg.HistoryGradeResults
	}
	return nil
}

// Average is the mean grade rounded to two decimals. An empty collection averages to 0.
func Average(grades []Grade) float64 {
	if len(grades) == 0 {
		return 0
	}
	var sum float64
	for _, g := range grades {
		sum += g.Grade
	}
	return math.Round(sum/float64(len(grades))*100) / 100
}
