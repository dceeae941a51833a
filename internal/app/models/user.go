package models

import "time"

// Role defines the user role type
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// User defines the user model based on the 'users' table
type User struct {
	ID              int64     `json:"id" db:"id"`
	Email           string    `json:"email" db:"email"`
	Password        string    `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	InstitutionalID string    `json:"institutional_id" db:"institutional_id"`
	Name            string    `json:"name" db:"name"`
	Role            Role      `json:"role" db:"role"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}
