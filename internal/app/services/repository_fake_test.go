package services

import (
	"context"
	"sort"
	"strconv"

	"github.com/google/uuid"

	"github.com/kasule/studentledger/internal/app/models"
	"github.com/kasule/studentledger/internal/pkg/apperrors"
)

// fakeStudentRepository is an in-memory IStudentRepository used by the
// service tests. It mirrors the real repository's contract: sequential ID
// assignment from 1001, lexicographic-descending listing and sentinel
// errors for missing records.
type fakeStudentRepository struct {
	students map[uuid.UUID]*models.Student
	failWith error
}

func newFakeStudentRepository() *fakeStudentRepository {
	return &fakeStudentRepository{
		students: make(map[uuid.UUID]*models.Student),
	}
}

func (f *fakeStudentRepository) Create(ctx context.Context, student *models.Student) error {
	if f.failWith != nil {
		return f.failWith
	}

	last := 1000
	for _, s := range f.students {
		if n, err := strconv.Atoi(s.StudentID); err == nil && n > last {
			last = n
		}
	}
	student.StudentID = strconv.Itoa(last + 1)

	stored := *student
	f.students[student.ID] = &stored
	return nil
}

func (f *fakeStudentRepository) GetByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, s := range f.students {
		if s.StudentID == studentID {
			copied := *s
			return &copied, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	s, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeStudentRepository) ListByStudentIDDesc(ctx context.Context) ([]*models.Student, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := make([]*models.Student, 0, len(f.students))
	for _, s := range f.students {
		copied := *s
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StudentID > out[j].StudentID
	})
	return out, nil
}

func (f *fakeStudentRepository) SetPasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	if f.failWith != nil {
		return f.failWith
	}
	s, ok := f.students[id]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	s.PasswordHash = &passwordHash
	return nil
}

func (f *fakeStudentRepository) MarkPaid(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	s, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	s.Balance = 0
	s.PaymentStatus = models.PaymentPaid
	s.ExaminationAccess = true
	copied := *s
	return &copied, nil
}
