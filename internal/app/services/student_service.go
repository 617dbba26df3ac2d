package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kasule/studentledger/internal/app/models"
	"github.com/kasule/studentledger/internal/app/models/dto"
	"github.com/kasule/studentledger/internal/app/repositories"
	"github.com/kasule/studentledger/internal/pkg/apperrors"
)

// studentService implements StudentService
type studentService struct {
	studentRepo repositories.IStudentRepository
	logger      zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo repositories.IStudentRepository, logger zerolog.Logger) StudentService {
	return &studentService{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// Enroll creates a student with server-assigned identifiers and fee state
// derived from the monthly fee: a positive fee opens a Pending balance and
// withholds examination access, anything else starts the student fully paid.
func (s *studentService) Enroll(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	fee := req.MonthlyFee

	student := &models.Student{
		ID:                uuid.New(),
		FullName:          req.FullName,
		Phone:             req.Phone,
		ParentPhone:       req.ParentPhone,
		MonthlyFee:        fee,
		PaymentStatus:     models.PaymentPaid,
		ExaminationAccess: true,
	}
	if fee > 0 {
		student.Balance = fee
		student.PaymentStatus = models.PaymentPending
		student.ExaminationAccess = false
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("studentID", student.StudentID).
		Float64("monthlyFee", student.MonthlyFee).
		Str("paymentStatus", string(student.PaymentStatus)).
		Msg("Student enrolled")

	return student, nil
}

// List returns all students ordered by student ID descending.
func (s *studentService) List(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.ListByStudentIDDesc(ctx)
}

// RecordFullPayment settles the identified student's balance absolutely.
// The operation is idempotent; paying an already-paid student is a no-op.
func (s *studentService) RecordFullPayment(ctx context.Context, recordID string) (*models.Student, error) {
	id, err := uuid.Parse(recordID)
	if err != nil {
		s.logger.Warn().Str("recordID", recordID).Msg("Payment with malformed record identifier")
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidRecordID, recordID)
	}

	student, err := s.studentRepo.MarkPaid(ctx, id)
	if err != nil {
		return nil, err
	}

	return student, nil
}
