package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus is the fee state of a student for the current period.
type PaymentStatus string

const (
	// PaymentPending means the student still owes the current balance.
	PaymentPending PaymentStatus = "Pending"
	// PaymentPaid means the balance has been settled in full.
	PaymentPaid PaymentStatus = "Paid"
)

// Student defines the student model based on the 'students' table.
// PasswordHash is excluded from JSON; it is nil until the student completes
// first-login setup.
type Student struct {
	ID                uuid.UUID     `json:"id" db:"id"`
	StudentID         string        `json:"studentId" db:"student_id"`
	FullName          string        `json:"fullName" db:"full_name"`
	Phone             string        `json:"phone" db:"phone"`
	ParentPhone       string        `json:"parentPhone" db:"parent_phone"`
	MonthlyFee        float64       `json:"monthlyFee" db:"monthly_fee"`
	Balance           float64       `json:"balance" db:"balance"`
	PaymentStatus     PaymentStatus `json:"paymentStatus" db:"payment_status"`
	ExaminationAccess bool          `json:"examinationAccess" db:"examination_access"`
	PasswordHash      *string       `json:"-" db:"password_hash"`
	CreatedAt         time.Time     `json:"createdAt" db:"created_at"`
}

// HasPassword reports whether the student has completed first-login setup.
func (s *Student) HasPassword() bool {
	return s.PasswordHash != nil && *s.PasswordHash != ""
}
