package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasule/studentledger/internal/app/models"
	"github.com/kasule/studentledger/internal/app/models/dto"
	"github.com/kasule/studentledger/internal/pkg/apperrors"
)

func newStudentFixture(t *testing.T) (StudentService, *fakeStudentRepository) {
	t.Helper()
	repo := newFakeStudentRepository()
	return NewStudentService(repo, zerolog.Nop()), repo
}

func TestEnrollWithFee(t *testing.T) {
	svc, _ := newStudentFixture(t)

	student, err := svc.Enroll(context.Background(), &dto.CreateStudentRequest{
		FullName:    "Aisha Nakato",
		Phone:       "0700123456",
		ParentPhone: "0700654321",
		MonthlyFee:  500,
	})
	require.NoError(t, err)

	assert.Equal(t, "1001", student.StudentID)
	assert.Equal(t, "Aisha Nakato", student.FullName)
	assert.Equal(t, 500.0, student.MonthlyFee)
	assert.Equal(t, 500.0, student.Balance)
	assert.Equal(t, models.PaymentPending, student.PaymentStatus)
	assert.False(t, student.ExaminationAccess)
	assert.Nil(t, student.PasswordHash)
}

func TestEnrollWithoutFee(t *testing.T) {
	svc, _ := newStudentFixture(t)

	student, err := svc.Enroll(context.Background(), &dto.CreateStudentRequest{FullName: "Brian Okello"})
	require.NoError(t, err)

	assert.Equal(t, 0.0, student.MonthlyFee)
	assert.Equal(t, 0.0, student.Balance)
	assert.Equal(t, models.PaymentPaid, student.PaymentStatus)
	assert.True(t, student.ExaminationAccess)
}

func TestEnrollWithNegativeFee(t *testing.T) {
	svc, _ := newStudentFixture(t)

	student, err := svc.Enroll(context.Background(), &dto.CreateStudentRequest{MonthlyFee: -50})
	require.NoError(t, err)

	// A non-positive fee never opens a balance or blocks examination access.
	assert.Equal(t, 0.0, student.Balance)
	assert.Equal(t, models.PaymentPaid, student.PaymentStatus)
	assert.True(t, student.ExaminationAccess)
}

func TestEnrollAssignsSequentialIDs(t *testing.T) {
	svc, _ := newStudentFixture(t)

	for i, want := range []string{"1001", "1002", "1003"} {
		student, err := svc.Enroll(context.Background(), &dto.CreateStudentRequest{MonthlyFee: float64(i * 100)})
		require.NoError(t, err)
		assert.Equal(t, want, student.StudentID)
	}
}

func TestListOrdersByStudentIDDescending(t *testing.T) {
	svc, _ := newStudentFixture(t)

	for i := 0; i < 3; i++ {
		_, err := svc.Enroll(context.Background(), &dto.CreateStudentRequest{})
		require.NoError(t, err)
	}

	students, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 3)
	assert.Equal(t, "1003", students[0].StudentID)
	assert.Equal(t, "1002", students[1].StudentID)
	assert.Equal(t, "1001", students[2].StudentID)
}

func TestRecordFullPayment(t *testing.T) {
	svc, _ := newStudentFixture(t)

	created, err := svc.Enroll(context.Background(), &dto.CreateStudentRequest{MonthlyFee: 500})
	require.NoError(t, err)

	paid, err := svc.RecordFullPayment(context.Background(), created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 0.0, paid.Balance)
	assert.Equal(t, models.PaymentPaid, paid.PaymentStatus)
	assert.True(t, paid.ExaminationAccess)
	assert.Equal(t, 500.0, paid.MonthlyFee)

	// Paying again is an absolute no-op, not an error.
	again, err := svc.RecordFullPayment(context.Background(), created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, *paid, *again)
}

func TestRecordFullPaymentUnknownRecord(t *testing.T) {
	svc, _ := newStudentFixture(t)

	_, err := svc.RecordFullPayment(context.Background(), "0b4db3f8-7745-4fd5-8b1f-07e170a23ea8")
	require.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestRecordFullPaymentMalformedRecordID(t *testing.T) {
	svc, _ := newStudentFixture(t)

	_, err := svc.RecordFullPayment(context.Background(), "not-a-uuid")
	require.ErrorIs(t, err, apperrors.ErrInvalidRecordID)
}

func TestEnrollPropagatesRepositoryFailure(t *testing.T) {
	svc, repo := newStudentFixture(t)
	repo.failWith = errors.New("connection refused")

	_, err := svc.Enroll(context.Background(), &dto.CreateStudentRequest{})
	require.Error(t, err)
}

func TestPaymentScenario(t *testing.T) {
	svc, _ := newStudentFixture(t)
	ctx := context.Background()

	first, err := svc.Enroll(ctx, &dto.CreateStudentRequest{MonthlyFee: 500})
	require.NoError(t, err)
	require.Equal(t, "1001", first.StudentID)
	require.Equal(t, 500.0, first.Balance)
	require.Equal(t, models.PaymentPending, first.PaymentStatus)
	require.False(t, first.ExaminationAccess)

	paid, err := svc.RecordFullPayment(ctx, first.ID.String())
	require.NoError(t, err)
	require.Equal(t, 0.0, paid.Balance)
	require.Equal(t, models.PaymentPaid, paid.PaymentStatus)
	require.True(t, paid.ExaminationAccess)

	second, err := svc.Enroll(ctx, &dto.CreateStudentRequest{})
	require.NoError(t, err)
	require.Equal(t, "1002", second.StudentID)
	require.Equal(t, 0.0, second.Balance)
	require.Equal(t, models.PaymentPaid, second.PaymentStatus)
	require.True(t, second.ExaminationAccess)
}
