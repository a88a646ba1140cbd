package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/Nethupa05/NS-Stores-Backend/internal/core/apperror"
	"github.com/Nethupa05/NS-Stores-Backend/internal/core/id"
)

type memoryUserRepo struct {
	byEmail map[string]*User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{byEmail: make(map[string]*User)}
}

func (r *memoryUserRepo) Create(_ context.Context, u *User) error {
	r.byEmail[u.Email] = u
	return nil
}

func (r *memoryUserRepo) GetByID(_ context.Context, userID id.ID) (*User, error) {
	for _, u := range r.byEmail {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, apperror.NewNotFound("user", userID)
}

func (r *memoryUserRepo) GetByEmail(_ context.Context, email string) (*User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, apperror.NewNotFound("user", email)
	}
	return u, nil
}

func (r *memoryUserRepo) List(context.Context, UserFilter) ([]User, int, error) {
	users := make([]User, 0, len(r.byEmail))
	for _, u := range r.byEmail {
		users = append(users, *u)
	}
	return users, len(users), nil
}

func (r *memoryUserRepo) Update(_ context.Context, u *User) error {
	r.byEmail[u.Email] = u
	return nil
}

func (r *memoryUserRepo) Delete(_ context.Context, userID id.ID) error {
	for email, u := range r.byEmail {
		if u.ID == userID {
			delete(r.byEmail, email)
			return nil
		}
	}
	return apperror.NewNotFound("user", userID)
}

func newAuthService(repo UserRepository) *Service {
	return NewService(repo, NewJWTService(DefaultJWTConfig("test-secret")), DefaultServiceConfig())
}

func TestRegister(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := newAuthService(repo)

	user, err := svc.Register(context.Background(), RegisterRequest{
		FullName: "Store Admin",
		Email:    "Admin@NS-Stores.local",
		Password: "admin12345",
		Role:     RoleAdmin,
	})

	assert.NoError(t, err)
	assert.Equal(t, "admin@ns-stores.local", user.Email)
	assert.NotEqual(t, "admin12345", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("admin12345")))
}

func TestRegisterDefaultsToCustomer(t *testing.T) {
	svc := newAuthService(newMemoryUserRepo())

	user, err := svc.Register(context.Background(), RegisterRequest{
		FullName: "Alice",
		Email:    "alice@example.com",
		Password: "password123",
	})

	assert.NoError(t, err)
	assert.Equal(t, RoleCustomer, user.Role)
}

func TestRegisterShortPassword(t *testing.T) {
	svc := newAuthService(newMemoryUserRepo())

	_, err := svc.Register(context.Background(), RegisterRequest{
		FullName: "Alice",
		Email:    "alice@example.com",
		Password: "short",
	})

	appErr, ok := apperror.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(newMemoryUserRepo())

	req := RegisterRequest{FullName: "Alice", Email: "alice@example.com", Password: "password123"}
	_, err := svc.Register(context.Background(), req)
	assert.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	appErr, ok := apperror.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, apperror.CodeDuplicate, appErr.Code)
}

func TestLogin(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := newAuthService(repo)

	_, err := svc.Register(context.Background(), RegisterRequest{
		FullName: "Alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	assert.NoError(t, err)

	token, user, err := svc.Login(context.Background(), Credentials{
		Email:    "Alice@Example.com",
		Password: "password123",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, token.AccessToken)
	assert.Equal(t, 1, user.LoginCount)
	assert.NotNil(t, user.LastLogin)

	// The issued token resolves back to the same account.
	claims, err := svc.jwtService.ValidateToken(token.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService(newMemoryUserRepo())

	_, err := svc.Register(context.Background(), RegisterRequest{
		FullName: "Alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	assert.NoError(t, err)

	_, _, err = svc.Login(context.Background(), Credentials{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})

	appErr, ok := apperror.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, apperror.CodeUnauthorized, appErr.Code)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newAuthService(newMemoryUserRepo())

	_, _, err := svc.Login(context.Background(), Credentials{
		Email:    "nobody@example.com",
		Password: "password123",
	})

	appErr, ok := apperror.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, apperror.CodeUnauthorized, appErr.Code)
}
