// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"restapi/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	FirstName    string
	LastName     string
	EmailAddress string
	Password     string
}

// FieldValues exposes the raw input to the rule tables.
func (in *RegisterUserInput) FieldValues() map[string]string {
	return map[string]string{
		"firstName":    in.FirstName,
		"lastName":     in.LastName,
		"emailAddress": in.EmailAddress,
		"password":     in.Password,
	}
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user.
type RegisterOutput struct {
	User *entity.User
}

// UserUsecase defines the interface for user-related business operations.
type UserUsecase interface {
	ListUsers(ctx context.Context) ([]*entity.User, error)
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)
}
