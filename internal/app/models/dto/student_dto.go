package dto

// CreateStudentRequest enumerates the recognized fields for enrollment.
// All fields are optional; unrecognized fields in the request body are
// dropped. The server assigns studentId and the derived fee state itself.
type CreateStudentRequest struct {
	FullName    string  `json:"fullName"`
	Phone       string  `json:"phone"`
	ParentPhone string  `json:"parentPhone"`
	MonthlyFee  float64 `json:"monthlyFee"`
}
