// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"restapi/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// List returns every user ordered by id.
	List(ctx context.Context) ([]*entity.User, error)

	// FindByEmail retrieves a single user by email address, compared case-insensitively.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user and fills in the generated id and timestamps.
	Create(ctx context.Context, user *entity.User) error
}
