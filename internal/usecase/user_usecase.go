// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"cookbook/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new user.
// The validation rules mirror the public contract: a well-formed email and a
// password of at least six characters.
type SignupInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// AuthOutput returns the bearer token issued after a successful signup or login.
type AuthOutput struct {
	Token string `json:"token"`
}

// ProfileOutput returns the public view of a user. The password digest never
// leaves the use case layer.
type ProfileOutput struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// NewProfileOutput maps a user entity to its public view.
func NewProfileOutput(user *entity.User) *ProfileOutput {
	return &ProfileOutput{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Signup registers a new user and returns a token for the new account.
	Signup(ctx context.Context, input *SignupInput) (*AuthOutput, error)

	// Login authenticates by email and password and returns a fresh token.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// GetProfile returns the public profile of the given user.
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileOutput, error)
}
