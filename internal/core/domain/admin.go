package domain

// Admin owns a set of employees and manages their attendance and salary.
type Admin struct {
	AdminID      int64  `json:"adminID"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	PasswordHash string `json:"-"`
	AuditFields
}
