package database

import (
	"strings"

	domainerrors "restapi/internal/domain/errors"
	"restapi/internal/errors"

	"gorm.io/gorm"
)

// Helper functions for driver error checking. GORM translates most driver
// codes when TranslateError is on; the message checks cover drivers that
// leave the error untranslated.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "23505")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "foreign key constraint") ||
		strings.Contains(errMsg, "23503")
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "not null constraint") ||
		strings.Contains(errMsg, "null value in column") ||
		strings.Contains(errMsg, "23502")
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return strings.Contains(strings.ToLower(err.Error()), "check constraint")
}

// translateConstraintError maps store constraint failures to client errors.
// Errors that are already AppErrors (model hooks) pass through untouched.
// It returns nil when err is not a constraint failure.
func translateConstraintError(err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	switch {
	case isNotNullConstraintViolation(err):
		return domainerrors.NewConstraintError("A required value is missing")
	case isForeignKeyConstraintViolation(err):
		return domainerrors.NewConstraintError("The referenced user does not exist")
	case isCheckConstraintViolation(err):
		return domainerrors.NewConstraintError("A value is out of range")
	default:
		return nil
	}
}
