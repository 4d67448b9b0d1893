package models

// Admin is a row of the admins table.
type Admin struct {
	AdminID      int64  `db:"id"`
	Name         string `db:"name"`
	Phone        string `db:"phone"`
	PasswordHash string `db:"password_hash"`
	AuditFields
}
