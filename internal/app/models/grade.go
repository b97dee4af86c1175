package models

// Grade is a single numeric grade row from the 'grades' table
type Grade struct {
	ID        int64   `json:"id" db:"id" example:"1"`
	StudentID int64   `json:"studentId" db:"student_id" example:"1"`
	Subject   Subject `json:"-" db:"subject"`
	Grade     float64 `json:"grade" db:"grade" example:"85.5"`
}
