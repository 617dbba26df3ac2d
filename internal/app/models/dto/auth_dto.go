package dto

import (
	"github.com/google/uuid"

	"github.com/kasule/studentledger/internal/app/models"
)

// LoginRequest represents login credentials.
// Password is optional so a setup-required student can be detected before
// any password comparison. Any role other than "admin" (including absent)
// takes the student path.
type LoginRequest struct {
	ID       string `json:"id" binding:"required"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// SetupRequest represents a first-login password setup request.
// The firestoreId field name is part of the existing wire contract; it
// carries the server-generated student record identifier.
type SetupRequest struct {
	FirestoreID string `json:"firestoreId" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

// AdminUser is the authenticated admin identity returned on login.
type AdminUser struct {
	Role     string `json:"role"`
	FullName string `json:"fullName"`
}

// StudentUser is the authenticated student identity returned on login.
// The embedded record contributes every student field to the JSON object.
type StudentUser struct {
	Role string `json:"role"`
	models.Student
}

// LoginResponse is the success envelope for an authenticated login.
type LoginResponse struct {
	Success bool        `json:"success"`
	User    interface{} `json:"user"`
}

// StudentRef identifies a student record without exposing any other fields.
type StudentRef struct {
	ID        uuid.UUID `json:"id"`
	StudentID string    `json:"studentId"`
}

// SetupRequiredResponse is returned when a student has never chosen a password.
type SetupRequiredResponse struct {
	Success    bool       `json:"success"`
	NeedsSetup bool       `json:"needsSetup"`
	Student    StudentRef `json:"student"`
}

// SetupResponse acknowledges a completed password setup.
type SetupResponse struct {
	Success bool `json:"success"`
}
