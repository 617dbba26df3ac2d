package apperrors

import "errors"

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Student errors
var (
	ErrStudentNotFound  = errors.New("student not found")
	ErrStudentIDExists  = errors.New("student ID already in use")
	ErrInvalidRecordID  = errors.New("invalid student record identifier")
	ErrValidationFailed = errors.New("validation failed")
)

// Is reports whether err matches target or any of the additional errors.
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}
