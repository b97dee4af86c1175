package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/gradebook/internal/app/models/dto"
	"github.com/yigit/gradebook/internal/app/services"
	"github.com/yigit/gradebook/internal/middleware"
)

// GradebookController handles student and grade endpoints
type GradebookController struct {
	gradebookService services.GradebookService
}

// NewGradebookController creates a new GradebookController
func NewGradebookController(gradebookService services.GradebookService) *GradebookController {
	return &GradebookController{
		gradebookService: gradebookService,
	}
}

// GetStudents lists all students
// @Summary List students
// @Description Returns every student without grades
// @Tags students
// @Produce json
// @Success 200 {array} models.Student "Students retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router / [get]
func (c *GradebookController) GetStudents(ctx *gin.Context) {
	c.respondWithStudents(ctx)
}

// CreateStudent creates a student and returns the updated list
// @Summary Create a student
// @Description Creates a student with empty grade collections
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 200 {array} models.Student "Student created, updated list returned"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router / [post]
func (c *GradebookController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, "Invalid student data", err)
		return
	}

	if err := c.gradebookService.CreateStudent(ctx.Request.Context(), req.Firstname, req.Lastname, req.EmailAddress); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.respondWithStudents(ctx)
}

// DeleteStudent deletes a student with all of its grades
// @Summary Delete a student
// @Description Deletes a student and every grade it owns, then returns the remaining students
// @Tags students
// @Produce json
// @Param id path int true "Student ID" Format(int64)
// @Success 200 {array} models.Student "Student deleted, updated list returned"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 404 {object} dto.NotFoundResponse "Student or Grade was not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/{id} [delete]
func (c *GradebookController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid student ID")
	if !ok {
		return
	}

	if err := c.gradebookService.DeleteStudent(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.respondWithStudents(ctx)
}

// GetStudentInformation returns the gradebook of a student
// @Summary Get student gradebook
// @Description Returns a student with its math, science and history grades and averages
// @Tags students
// @Produce json
// @Param id path int true "Student ID" Format(int64)
// @Success 200 {object} models.Gradebook "Gradebook retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 404 {object} dto.NotFoundResponse "Student or Grade was not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /studentInformation/{id} [get]
func (c *GradebookController) GetStudentInformation(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid student ID")
	if !ok {
		return
	}

	gradebook, err := c.gradebookService.GetGradebook(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gradebook)
}

// CreateGrade adds a grade to a student
// @Summary Create a grade
// @Description Adds a math, science or history grade to a student and returns the recomputed gradebook
// @Tags grades
// @Accept x-www-form-urlencoded
// @Produce json
// @Param grade formData number true "Grade value between 0 and 100"
// @Param gradeType formData string true "Subject" Enums(math, science, history)
// @Param studentId formData int true "Student ID"
// @Success 200 {object} models.Gradebook "Grade created, gradebook returned"
// @Failure 400 {object} dto.ErrorResponse "Invalid grade data"
// @Failure 404 {object} dto.NotFoundResponse "Student or Grade was not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grades [post]
func (c *GradebookController) CreateGrade(ctx *gin.Context) {
	var req dto.CreateGradeRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleBindError(ctx, "Invalid grade data", err)
		return
	}

	gradebook, err := c.gradebookService.CreateGrade(ctx.Request.Context(), req.StudentID, req.GradeType, *req.Grade)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gradebook)
}

// DeleteGrade deletes a single grade
// @Summary Delete a grade
// @Description Deletes a grade of the given subject and returns the owner's recomputed gradebook
// @Tags grades
// @Produce json
// @Param id path int true "Grade ID" Format(int64)
// @Param gradeType path string true "Subject" Enums(math, science, history)
// @Success 200 {object} models.Gradebook "Grade deleted, gradebook returned"
// @Failure 400 {object} dto.ErrorResponse "Invalid grade ID"
// @Failure 404 {object} dto.NotFoundResponse "Student or Grade was not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grades/{id}/{gradeType} [delete]
func (c *GradebookController) DeleteGrade(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid grade ID")
	if !ok {
		return
	}

	gradebook, err := c.gradebookService.DeleteGrade(ctx.Request.Context(), id, ctx.Param("gradeType"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gradebook)
}

func (c *GradebookController) respondWithStudents(ctx *gin.Context) {
	students, err := c.gradebookService.ListStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, students)
}

// parseIDParam reads a numeric path parameter, writing a 400 response when it is malformed
func parseIDParam(ctx *gin.Context, name, message string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message).
			WithField(name).
			WithDetails(name + " must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
