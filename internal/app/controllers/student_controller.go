package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kasule/studentledger/internal/app/models/dto"
	"github.com/kasule/studentledger/internal/app/services"
	"github.com/kasule/studentledger/internal/middleware"
)

// StudentController handles student management operations
type StudentController struct {
	studentService services.StudentService
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService: studentService,
		logger:         logger,
	}
}

// ListStudents returns all students
// @Summary List all students
// @Description Returns every student record ordered by student ID descending. No pagination or filtering.
// @Tags students
// @Produce json
// @Success 200 {array} models.Student "Student records"
// @Failure 500 {object} dto.MessageResponse "Error fetching students"
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	students, err := c.studentService.List(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list students")
		middleware.HandleStudentError(ctx, "Error fetching students")
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// CreateStudent enrolls a new student
// @Summary Enroll a student
// @Description Creates a student with a server-assigned sequential student ID and fee state derived from the monthly fee.
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student fields"
// @Success 200 {object} models.Student "Created student record"
// @Failure 500 {object} dto.MessageResponse "Error adding student"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid create student request payload")
		middleware.HandleStudentError(ctx, "Error adding student")
		return
	}

	student, err := c.studentService.Enroll(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to enroll student")
		middleware.HandleStudentError(ctx, "Error adding student")
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// RecordPayment marks a student's fee as paid in full
// @Summary Record a full payment
// @Description Zeroes the balance, marks the payment status Paid and grants examination access. Idempotent.
// @Tags students
// @Produce json
// @Param id path string true "Student record identifier"
// @Success 200 {object} models.Student "Updated student record"
// @Failure 500 {object} dto.MessageResponse "Payment update failed"
// @Router /students/{id}/pay [patch]
func (c *StudentController) RecordPayment(ctx *gin.Context) {
	recordID := ctx.Param("id")

	student, err := c.studentService.RecordFullPayment(ctx.Request.Context(), recordID)
	if err != nil {
		c.logger.Error().Err(err).Str("recordID", recordID).Msg("Failed to record payment")
		middleware.HandleStudentError(ctx, "Payment update failed")
		return
	}

	ctx.JSON(http.StatusOK, student)
}
