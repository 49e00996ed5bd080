package usecase

import (
	"context"

	"restapi/internal/domain/entity"
)

// AuthUsecase verifies per-request credentials.
type AuthUsecase interface {
	// Authenticate resolves the principal for creds. Unknown identifiers and
	// wrong secrets both yield ErrAccessDenied; other errors are faults.
	Authenticate(ctx context.Context, creds entity.CredentialPair) (*entity.User, error)
}
