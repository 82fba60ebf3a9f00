// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"time"
)

// Role is the coarse permission class assigned to a user at registration.
type Role string

const (
	// RoleAdmin grants full access to every post.
	RoleAdmin Role = "admin"
	// RoleEditor restricts access to own content plus published content.
	RoleEditor Role = "editor"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEditor
}

// User represents a registered account.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserRepository defines the port for user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, username, email, passwordHash string, role Role) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}
