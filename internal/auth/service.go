package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/aurora-studio/site-api/internal/apperr"
	"github.com/aurora-studio/site-api/internal/models"
	"github.com/aurora-studio/site-api/internal/validate"
)

// Returned by UserStore implementations so the service can translate store
// outcomes without knowing the driver.
var (
	ErrDuplicateEmail = errors.New("auth: email already exists")
	ErrUserNotFound   = errors.New("auth: user not found")
)

type UserStore interface {
	// CreateUser inserts u and fills its ID and CreatedAt. A uniqueness
	// violation on email is reported as ErrDuplicateEmail.
	CreateUser(ctx context.Context, u *models.User) error
	UserByEmail(ctx context.Context, email string) (*models.User, error)
}

type Service struct {
	store UserStore
}

func NewService(store UserStore) *Service {
	return &Service{store: store}
}

// Register creates a regular account. The role is always "user" here; the
// one admin account comes from the bootstrap seed, never from this path.
func (s *Service) Register(ctx context.Context, fullName, email, password string) (*models.User, error) {
	if !validate.Required(fullName, email, password) {
		return nil, apperr.Validation("All fields are required.")
	}
	if !validate.Email(email) {
		return nil, apperr.Validation("Invalid email format.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal("Internal server error.", err)
	}

	u := &models.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}

	if err := s.store.CreateUser(ctx, u); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return nil, apperr.Conflict("Email already registered.")
		}
		return nil, apperr.Internal("Internal server error.", err)
	}

	return u, nil
}

// Login checks credentials and returns the stored user. An unknown email
// and a wrong password fail identically so callers cannot tell which half
// was bad.
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, error) {
	if !validate.Required(email, password) {
		return nil, apperr.Validation("Email and password are required.")
	}

	u, err := s.store.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, apperr.Unauthorized("Invalid credentials.")
		}
		return nil, apperr.Internal("Internal server error.", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, apperr.Unauthorized("Invalid credentials.")
	}

	return u, nil
}
