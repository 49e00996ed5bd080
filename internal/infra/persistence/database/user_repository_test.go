package database

import (
	"context"
	"testing"

	"restapi/internal/domain/entity"
	domainerrors "restapi/internal/domain/errors"
	"restapi/internal/domain/repository"
	"restapi/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndList(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := seedUser(t, db, "jane@example.com")
	second := seedUser(t, db, "john@example.com")

	assert.NotZero(t, first.ID)
	assert.Greater(t, second.ID, first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "jane@example.com", users[0].EmailAddress)
	assert.Equal(t, "john@example.com", users[1].EmailAddress)
	assert.Equal(t, first.PasswordHash, users[0].PasswordHash)
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	created := seedUser(t, db, "Jane@Example.com")

	tests := []struct {
		name    string
		email   string
		wantErr error
	}{
		{name: "exact", email: "Jane@Example.com"},
		{name: "different case", email: "jane@example.COM"},
		{name: "unknown", email: "nobody@example.com", wantErr: repository.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := repo.FindByEmail(ctx, tt.email)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, created.ID, user.ID)
			assert.Equal(t, "Jane@Example.com", user.EmailAddress)
		})
	}
}

func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, db, "jane@example.com")

	err := repo.Create(ctx, &entity.User{
		FirstName:    "Janet",
		LastName:     "Doe",
		EmailAddress: "jane@example.com",
		PasswordHash: "hash",
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyInUse)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserRepository_CreateDuplicateEmailIgnoresCase(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, db, "jane@example.com")

	for _, email := range []string{"JANE@example.com", "Jane@Example.Com"} {
		t.Run(email, func(t *testing.T) {
			err := repo.Create(ctx, &entity.User{
				FirstName:    "Janet",
				LastName:     "Doe",
				EmailAddress: email,
				PasswordHash: "hash",
			})
			assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyInUse)
		})
	}

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserRepository_CreateRejectsEmptyFields(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	err := repo.Create(context.Background(), &entity.User{FirstName: "Jane", PasswordHash: "hash"})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.KindConstraintViolation, appErr.ErrorCode())
	assert.Equal(t, []string{
		`Please provide a value for "last name"`,
		`Please provide a value for "email"`,
	}, appErr.Details())
}
