package dto

// CreateStudentRequest is the JSON body of POST /
type CreateStudentRequest struct {
	Firstname    string `json:"firstname" binding:"required,max=100" example:"Chad"`
	Lastname     string `json:"lastname" binding:"required,max=100" example:"Darby"`
	EmailAddress string `json:"emailAddress" binding:"required,contains=@,max=255" example:"chad.darby@luv2code_school.com"`
}

// CreateGradeRequest is the form body of POST /grades.
// gradeType and studentId are resolved by the service so that unknown values report not-found.
type CreateGradeRequest struct {
	Grade     *float64 `form:"grade" binding:"required,gte=0,lte=100"`
	GradeType string   `form:"gradeType"`
	StudentID int64    `form:"studentId"`
}
