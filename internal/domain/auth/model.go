// Package auth provides authentication and user management domain logic.
package auth

import (
	"context"
	"strings"
	"time"

	"github.com/Nethupa05/NS-Stores-Backend/internal/core/apperror"
	"github.com/Nethupa05/NS-Stores-Backend/internal/core/id"
)

// Role defines the user role.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// User represents an account able to authenticate against the API.
type User struct {
	ID id.ID `db:"id" json:"id"`

	FullName string `db:"full_name" json:"fullName"`
	Email    string `db:"email" json:"email"`
	Role     Role   `db:"role" json:"role"`

	// PasswordHash is the bcrypt hash, never exposed in JSON
	PasswordHash string `db:"password_hash" json:"-"`

	// LoginCount and LastLogin are bookkeeping updated on each login.
	// The user activity report is built from these fields.
	LoginCount int        `db:"login_count" json:"loginCount"`
	LastLogin  *time.Time `db:"last_login" json:"lastLogin,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// NewUser creates a new User with required fields.
func NewUser(fullName, email string, role Role) *User {
	now := time.Now().UTC()
	return &User{
		ID:        id.New(),
		FullName:  fullName,
		Email:     strings.ToLower(email),
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate checks invariants before persistence.
func (u *User) Validate(ctx context.Context) error {
	if u.FullName == "" {
		return apperror.NewValidation("fullName is required").WithDetail("field", "fullName")
	}
	if u.Email == "" || !strings.Contains(u.Email, "@") {
		return apperror.NewValidation("a valid email is required").WithDetail("field", "email")
	}
	if u.Role != RoleAdmin && u.Role != RoleCustomer {
		return apperror.NewValidation("invalid role").
			WithDetail("field", "role").
			WithDetail("value", string(u.Role))
	}
	return nil
}

// RecordSuccessfulLogin bumps the login counters.
func (u *User) RecordSuccessfulLogin() {
	now := time.Now().UTC()
	u.LoginCount++
	u.LastLogin = &now
	u.UpdatedAt = now
}
