package auth

import (
	"context"

	"github.com/Nethupa05/NS-Stores-Backend/internal/core/id"
)

// UserFilter narrows user listings.
type UserFilter struct {
	Search string
	Role   Role

	Limit  int
	Offset int
}

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, userID id.ID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, filter UserFilter) ([]User, int, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, userID id.ID) error
}
