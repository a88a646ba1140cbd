package dto

import (
	"time"

	"github.com/Nethupa05/NS-Stores-Backend/internal/domain/auth"
)

// RegisterRequest carries new-account data.
type RegisterRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

// LoginRequest carries credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries an issued token with the account it belongs to.
type AuthResponse struct {
	AccessToken string     `json:"accessToken"`
	ExpiresAt   time.Time  `json:"expiresAt"`
	User        *auth.User `json:"user"`
}
