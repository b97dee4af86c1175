package models

// Student defines the student model based on the 'students' table
type Student struct {
	ID           int64  `json:"id" db:"id" example:"1"`
	Firstname    string `json:"firstname" db:"firstname" example:"Eric"`
	Lastname     string `json:"lastname" db:"lastname" example:"Roby"`
	EmailAddress string `json:"emailAddress" db:"email_address" example:"eric.roby@luv2code_school.com"`
}

// FullName joins first and last name with a single space
func (s Student) FullName() string {
	return s.Firstname + " " + s.Lastname
}
