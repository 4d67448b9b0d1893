package dto

import "github.com/vnpayroll/attendance_backend/internal/core/domain"

// LoginRequest is shared by the admin and employee login endpoints.
type LoginRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

// AdminResponse is the public view of an admin.
type AdminResponse struct {
	AdminID int64  `json:"adminID"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
}

// AdminLoginResponse represents the response for a successful admin login.
type AdminLoginResponse struct {
	Token string        `json:"token"`
	Admin AdminResponse `json:"admin"`
}

// EmployeeLoginResponse represents the response for a successful employee login.
type EmployeeLoginResponse struct {
	Token    string           `json:"token"`
	Employee EmployeeResponse `json:"employee"`
}

// ToAdminResponse converts a domain.Admin to AdminResponse DTO
func ToAdminResponse(a *domain.Admin) AdminResponse {
	return AdminResponse{AdminID: a.AdminID, Name: a.Name, Phone: a.Phone}
}

// MessageResponse is the body of operations that only report success.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
