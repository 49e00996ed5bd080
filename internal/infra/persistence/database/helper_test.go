package database

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"restapi/internal/domain/entity"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"), slog.New(slog.NewTextHandler(io.Discard, nil)), false)
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()

	user := &entity.User{
		FirstName:    "Jane",
		LastName:     "Doe",
		EmailAddress: email,
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func strPtr(s string) *string {
	return &s
}
