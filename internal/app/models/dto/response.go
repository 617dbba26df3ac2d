package dto

// AuthFailureResponse is the failure shape of the login and setup routes.
type AuthFailureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// MessageResponse is the failure shape of the student-management routes.
// The two shapes differ deliberately; both are part of the existing contract.
type MessageResponse struct {
	Message string `json:"message"`
}

// NewAuthFailure creates a login/setup failure response.
func NewAuthFailure(message string) AuthFailureResponse {
	return AuthFailureResponse{Success: false, Message: message}
}
