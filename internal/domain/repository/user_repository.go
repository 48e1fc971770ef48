// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"drivematch/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrEmailTaken is returned when a create violates the unique email index.
var ErrEmailTaken = errors.New("email already registered")

// UserRepository defines the standard operations for user account persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.UserAccount, error)

	// FindByEmailAndPhone retrieves a user matching both fields exactly.
	// Login is a lookup, not a challenge, so both values must match.
	FindByEmailAndPhone(ctx context.Context, email, phone string) (*entity.UserAccount, error)

	// Create persists a new user account to the storage.
	Create(ctx context.Context, user *entity.UserAccount) error
}
