// Package validation evaluates declarative per-field rule tables against
// request input. Each rule is a go-playground/validator tag plus the message
// reported when the tag fails.
package validation

import (
	"strconv"
	"strings"

	domainerrors "restapi/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

const (
	tagRequired = "required"

	// tagMaxBytes bounds the UTF-8 byte length; max counts runes.
	tagMaxBytes = "maxbytes"
)

// Violation is a single failed field rule.
type Violation struct {
	Field   string
	Message string
}

// Rule pairs a validator tag with its failure message.
type Rule struct {
	Tag     string
	Message string
}

// FieldRules lists the rules of one field in evaluation order.
type FieldRules struct {
	Field string
	Rules []Rule
}

// RuleSet is an ordered rule table. Fields are always all evaluated; within a
// field evaluation stops at the first failing rule.
type RuleSet []FieldRules

// Subject is implemented by inputs that expose their raw field values by name.
type Subject interface {
	FieldValues() map[string]string
}

// Rule tables.
var (
	UserCreateRules = RuleSet{
		{Field: "firstName", Rules: []Rule{
			{Tag: tagRequired, Message: `Please provide a value for "first name"`},
		}},
		{Field: "lastName", Rules: []Rule{
			{Tag: tagRequired, Message: `Please provide a value for "last name"`},
		}},
		{Field: "emailAddress", Rules: []Rule{
			{Tag: tagRequired, Message: `Please provide a value for "email"`},
			{Tag: "email", Message: `Please provide a valid email address for "email"`},
		}},
		{Field: "password", Rules: []Rule{
			{Tag: tagRequired, Message: `Please provide a value for "password"`},
			{Tag: "min=8,max=20,maxbytes=72", Message: `Please provide a value for "password" that is between 8 and 20 characters in length`},
		}},
	}

	CourseRules = RuleSet{
		{Field: "title", Rules: []Rule{
			{Tag: tagRequired, Message: `Please provide a value for "title"`},
		}},
		{Field: "description", Rules: []Rule{
			{Tag: tagRequired, Message: `Please provide a value for "description"`},
		}},
	}
)

// Validator runs rule tables.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.RegisterValidation(tagMaxBytes, maxBytes); err != nil {
		panic(err)
	}

	return &Validator{validate: validate}
}

// maxBytes passes when the string fits in param bytes. bcrypt refuses
// secrets longer than 72 bytes, so the password row uses it.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}

	return len(fl.Field().String()) <= limit
}

// Validate returns the violations of values against rules in declaration order.
// Presence checks look at the trimmed value; other rules see the raw value.
func (v *Validator) Validate(rules RuleSet, values map[string]string) []Violation {
	var violations []Violation

	for _, field := range rules {
		raw := values[field.Field]
		for _, rule := range field.Rules {
			value := raw
			if rule.Tag == tagRequired {
				value = strings.TrimSpace(raw)
			}

			if err := v.validate.Var(value, rule.Tag); err != nil {
				violations = append(violations, Violation{Field: field.Field, Message: rule.Message})

				break
			}
		}
	}

	return violations
}

// Check validates subject and wraps any violations in a validation failure.
func (v *Validator) Check(rules RuleSet, subject Subject) error {
	violations := v.Validate(rules, subject.FieldValues())
	if len(violations) == 0 {
		return nil
	}

	return domainerrors.ErrValidationFailed.WithDetails(Messages(violations)...)
}

// Messages projects violations onto their messages.
func Messages(violations []Violation) []string {
	messages := make([]string, 0, len(violations))
	for _, violation := range violations {
		messages = append(messages, violation.Message)
	}

	return messages
}
