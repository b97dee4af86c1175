package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/gradebook/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, gradebookController *controllers.GradebookController) {
	// Students
	router.GET("/", gradebookController.GetStudents)
	router.POST("/", gradebookController.CreateStudent)
	router.DELETE("/student/:id", gradebookController.DeleteStudent)
	router.GET("/studentInformation/:id", gradebookController.GetStudentInformation)

	// Grades
	router.POST("/grades", gradebookController.CreateGrade)
	router.DELETE("/grades/:id/:gradeType", gradebookController.DeleteGrade)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})
}
