package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kasule/studentledger/internal/app/models/dto"
	"github.com/kasule/studentledger/internal/pkg/apperrors"
)

// The login/setup routes and the student-management routes answer failures
// with different JSON shapes. The asymmetry is part of the existing wire
// contract and is preserved here rather than normalized.

// HandleLoginError maps an authentication failure onto the login route's
// response contract. Only bad credentials (401) and an unknown student ID
// (404) are distinguished; everything else collapses to a generic 500.
func HandleLoginError(c *gin.Context, err error, adminAttempt bool) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		message := "Incorrect password"
		if adminAttempt {
			message = "Invalid Admin credentials"
		}
		c.JSON(http.StatusUnauthorized, dto.NewAuthFailure(message))
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, dto.NewAuthFailure("Student ID not found"))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewAuthFailure("Server error"))
	}
}

// HandleSetupError maps any password-setup failure onto the setup route's
// contract: a generic 500 regardless of cause.
func HandleSetupError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, dto.NewAuthFailure("Password setup failed"))
}

// HandleStudentError maps any student-management failure onto that route
// group's contract: a fixed per-route message with status 500. The cause is
// logged by the caller but never leaks to the client.
func HandleStudentError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: message})
}
