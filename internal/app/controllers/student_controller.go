package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/collegeez/internal/app/models/dto"
	"github.com/yigit/collegeez/internal/app/services"
	"github.com/yigit/collegeez/internal/middleware"
)

// StudentController handles student registration and lookup
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// RegisterStudent stores a new student
// @Summary Register a student
// @Description Stores a student; createdAt is set by the server. Emails are unique.
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.RegisterStudentRequest true "Student information"
// @Success 200 {object} dto.InsertResult
// @Failure 400 {object} dto.ErrorResponse "Malformed body or missing email"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /updateUser [post]
func (c *StudentController) RegisterStudent(ctx *gin.Context) {
	var req dto.RegisterStudentRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	result, err := c.studentService.RegisterStudent(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// GetStudentByEmail returns a student with the logo of their college
// @Summary Get student by email
// @Tags students
// @Produce json
// @Param email path string true "Student email"
// @Success 200 {object} dto.StudentResponse
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{email} [get]
func (c *StudentController) GetStudentByEmail(ctx *gin.Context) {
	student, err := c.studentService.GetStudentByEmail(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}
