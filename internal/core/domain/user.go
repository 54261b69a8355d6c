package domain

import (
	"errors"
	"time"
)

const (
	RoleGuest = "guest"
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")

// ValidRole reports whether role is one of the closed role set.
func ValidRole(role string) bool {
	return role == RoleGuest || role == RoleUser || role == RoleAdmin
}

// User models a registered shopper or back-office operator.
// New accounts default to RoleGuest until promoted.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
