// Package form declares the application's forms and their validation
// rules. Validation is a pure function of the submitted values; it never
// touches persistence.
package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Errors maps a form field name to a human-readable validation message.
// An empty map means the form is valid.
type Errors map[string]string

// RegisterForm collects the fields for a new account. The 6-12 character
// password bound is a deliberate business rule, not a placeholder.
type RegisterForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6,max=12"`
	Name     string `validate:"required,min=2"`
}

// LoginForm collects existing-account credentials.
type LoginForm struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// PostForm collects the fields for creating or editing a blog post. Body
// may carry editor-produced HTML; nothing here inspects it.
type PostForm struct {
	Title    string `validate:"required"`
	Subtitle string `validate:"required"`
	ImgURL   string `validate:"required,url"`
	Body     string `validate:"required"`
}

// CommentForm collects a single comment.
type CommentForm struct {
	Text string `validate:"required"`
}

// Validate runs the struct's validation tags and returns per-field
// messages keyed by field name.
func Validate(f any) Errors {
	errs := Errors{}
	err := validate.Struct(f)
	if err == nil {
		return errs
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		errs[""] = "invalid input"
		return errs
	}

	for _, fe := range ve {
		errs[fe.Field()] = fieldError(fe)
	}
	return errs
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "url":
		return field + " must be a valid URL"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
