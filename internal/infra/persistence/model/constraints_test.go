package model

import (
	"testing"

	domainerrors "restapi/internal/domain/errors"
	"restapi/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserModel_BeforeSave(t *testing.T) {
	valid := &UserModel{FirstName: "Jane", LastName: "Doe", EmailAddress: "jane@example.com", Password: "$2a$10$hash"}
	require.NoError(t, valid.BeforeSave(nil))

	err := (&UserModel{FirstName: "Jane"}).BeforeSave(nil)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.KindConstraintViolation, appErr.ErrorCode())
	assert.Equal(t, []string{
		`Please provide a value for "last name"`,
		`Please provide a value for "email"`,
		`Please provide a value for "password"`,
	}, appErr.Details())
}

func TestCourseModel_BeforeSave(t *testing.T) {
	valid := &CourseModel{UserID: 1, Title: "Go", Description: "Learn Go"}
	require.NoError(t, valid.BeforeSave(nil))

	err := (&CourseModel{UserID: 1, Title: "Go"}).BeforeSave(nil)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, []string{`Please provide a value for "description"`}, appErr.Details())
}

func TestCourseModel_BeforeSaveIgnoresOwner(t *testing.T) {
	course := &CourseModel{UserID: 1, Title: "Go", Description: "Learn Go", Owner: &UserModel{}}
	assert.NoError(t, course.BeforeSave(nil))
}
