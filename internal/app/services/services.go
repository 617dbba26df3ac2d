package services

import (
	"context"

	"github.com/kasule/studentledger/internal/app/models"
	"github.com/kasule/studentledger/internal/app/models/dto"
)

// AuthOutcome is the result of a successful authentication attempt.
// Exactly one of Admin or Student is meaningful; NeedsSetup marks a student
// who has never chosen a password, in which case Student carries only the
// identifiers.
type AuthOutcome struct {
	Admin         bool
	AdminFullName string
	NeedsSetup    bool
	Student       *models.Student
}

// AuthService authenticates callers and manages first-login password setup.
type AuthService interface {
	Authenticate(ctx context.Context, req *dto.LoginRequest) (*AuthOutcome, error)
	CompleteSetup(ctx context.Context, recordID, password string) error
}

// StudentService manages the student lifecycle and fee state.
type StudentService interface {
	Enroll(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error)
	List(ctx context.Context) ([]*models.Student, error)
	RecordFullPayment(ctx context.Context, recordID string) (*models.Student, error)
}
