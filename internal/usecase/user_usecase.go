package usecase

import (
	"context"

	"drivematch/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// The password is hashed before storage and only the last four digits of the
// SSN are retained.
type RegisterInput struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Password    string `json:"password" validate:"required"`
	SSN         string `json:"ssn" validate:"required"`
}

// LoginInput defines the data required to log in. Login is an exact
// email+phone lookup, no password challenge.
type LoginInput struct {
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's basic information.
type RegisterOutput struct {
	User *entity.UserAccount `json:"user"`
}

// LoginOutput returns the matched account.
type LoginOutput struct {
	User *entity.UserAccount `json:"user"`
}

// UserUsecase defines the interface for account-related business operations.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
