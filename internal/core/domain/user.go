package domain

// User represents an application user (a manager operating the system, not
// an employee on the floor).
type User struct {
	UserID       string `json:"userID" db:"user_id"` // Primary Key (UUID)
	Name         string `json:"name" db:"name"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
	IsActive     bool   `json:"isActive" db:"is_active"`
	AuditFields
}
