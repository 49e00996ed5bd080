package model

import (
	"reflect"

	domainerrors "restapi/internal/domain/errors"
	"restapi/internal/errors"

	"github.com/go-playground/validator/v10"
)

var modelValidator = validator.New(validator.WithRequiredStructEnabled())

// All lists every model for migrations and code generation.
func All() []any {
	return []any{&UserModel{}, &CourseModel{}}
}

// checkConstraints validates a model against its `validate` tags and reports
// each failure with the field's `message` tag.
func checkConstraints(m any) error {
	err := modelValidator.Struct(m)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate model")
	}

	modelType := reflect.Indirect(reflect.ValueOf(m)).Type()
	messages := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		message := fieldErr.Error()
		if field, ok := modelType.FieldByName(fieldErr.StructField()); ok {
			if tagged := field.Tag.Get("message"); tagged != "" {
				message = tagged
			}
		}
		messages = append(messages, message)
	}

	return domainerrors.NewConstraintError(messages...)
}
