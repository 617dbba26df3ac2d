package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kasule/studentledger/internal/app/models/dto"
	"github.com/kasule/studentledger/internal/app/repositories"
	"github.com/kasule/studentledger/internal/pkg/apperrors"
	"github.com/kasule/studentledger/internal/pkg/auth"
)

// AdminCredentials is the configured admin credential pair. The admin is not
// a database entity; the pair is injected at startup so tests can override it.
type AdminCredentials struct {
	Username string
	Password string
	FullName string
}

// authService implements AuthService
type authService struct {
	studentRepo repositories.IStudentRepository
	admin       AdminCredentials
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(studentRepo repositories.IStudentRepository, admin AdminCredentials, logger zerolog.Logger) AuthService {
	return &authService{
		studentRepo: studentRepo,
		admin:       admin,
		logger:      logger,
	}
}

// Authenticate checks the caller's credentials. The admin path compares
// against the configured pair; every other role is treated as a student
// lookup by student ID.
func (s *authService) Authenticate(ctx context.Context, req *dto.LoginRequest) (*AuthOutcome, error) {
	if req.Role == "admin" {
		if req.ID == s.admin.Username && req.Password == s.admin.Password {
			return &AuthOutcome{Admin: true, AdminFullName: s.admin.FullName}, nil
		}
		s.logger.Warn().Str("username", req.ID).Msg("Admin login with invalid credentials")
		return nil, apperrors.ErrInvalidCredentials
	}

	student, err := s.studentRepo.GetByStudentID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	// A student without a digest has never logged in; no password is
	// compared and only the identifiers are exposed.
	if !student.HasPassword() {
		return &AuthOutcome{NeedsSetup: true, Student: student}, nil
	}

	if !auth.VerifyPassword(req.Password, *student.PasswordHash) {
		s.logger.Warn().Str("studentID", req.ID).Msg("Student login with incorrect password")
		return nil, apperrors.ErrInvalidCredentials
	}

	return &AuthOutcome{Student: student}, nil
}

// CompleteSetup digests the chosen password and stores it on the student
// record, overwriting any prior value.
func (s *authService) CompleteSetup(ctx context.Context, recordID, password string) error {
	id, err := uuid.Parse(recordID)
	if err != nil {
		s.logger.Warn().Str("recordID", recordID).Msg("Password setup with malformed record identifier")
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidRecordID, recordID)
	}

	passwordHash := auth.HashPassword(password)
	if err := s.studentRepo.SetPasswordHash(ctx, id, passwordHash); err != nil {
		return err
	}

	s.logger.Info().Str("recordID", recordID).Msg("Student password setup completed")
	return nil
}
