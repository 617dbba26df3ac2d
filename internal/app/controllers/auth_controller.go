// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kasule/studentledger/internal/app/models/dto"
	"github.com/kasule/studentledger/internal/app/services"
	"github.com/kasule/studentledger/internal/middleware"
)

// AuthController handles authentication related operations
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Login handles admin and student login
// @Summary Authenticate a caller
// @Description Authenticates an admin (configured credential pair) or a student (by student ID). A student who has never chosen a password receives a setup-required response instead of a credential check.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse "Login successful, or setup required"
// @Failure 401 {object} dto.AuthFailureResponse "Invalid credentials"
// @Failure 404 {object} dto.AuthFailureResponse "Student ID not found"
// @Failure 500 {object} dto.AuthFailureResponse "Server error"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewAuthFailure(dto.TranslateValidationError(err)))
		return
	}

	outcome, err := c.authService.Authenticate(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("id", req.ID).Str("role", req.Role).Msg("Login failed")
		middleware.HandleLoginError(ctx, err, req.Role == "admin")
		return
	}

	if outcome.NeedsSetup {
		c.logger.Info().Str("studentID", outcome.Student.StudentID).Msg("Student login requires password setup")
		ctx.JSON(http.StatusOK, dto.SetupRequiredResponse{
			Success:    true,
			NeedsSetup: true,
			Student: dto.StudentRef{
				ID:        outcome.Student.ID,
				StudentID: outcome.Student.StudentID,
			},
		})
		return
	}

	if outcome.Admin {
		c.logger.Info().Str("username", req.ID).Msg("Admin logged in")
		ctx.JSON(http.StatusOK, dto.LoginResponse{
			Success: true,
			User:    dto.AdminUser{Role: "admin", FullName: outcome.AdminFullName},
		})
		return
	}

	c.logger.Info().Str("studentID", outcome.Student.StudentID).Msg("Student logged in")
	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		User:    dto.StudentUser{Role: "student", Student: *outcome.Student},
	})
}

// Setup handles first-login password setup
// @Summary Set a student's password
// @Description Stores the digest of the chosen password on the identified student record. Called once after a setup-required login.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SetupRequest true "Record identifier and chosen password"
// @Success 200 {object} dto.SetupResponse "Password stored"
// @Failure 500 {object} dto.AuthFailureResponse "Password setup failed"
// @Router /students/setup [post]
func (c *AuthController) Setup(ctx *gin.Context) {
	var req dto.SetupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid setup request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewAuthFailure(dto.TranslateValidationError(err)))
		return
	}

	if err := c.authService.CompleteSetup(ctx.Request.Context(), req.FirestoreID, req.Password); err != nil {
		c.logger.Error().Err(err).Str("recordID", req.FirestoreID).Msg("Password setup failed")
		middleware.HandleSetupError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SetupResponse{Success: true})
}
