package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/stockroom-api/internal/domain"
	"github.com/phrazzld/stockroom-api/internal/service/auth"
	"github.com/phrazzld/stockroom-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
//
// Uniqueness conflicts map to 400 rather than 409: the frontend surfaces
// the message body directly and expects the same status as other input
// errors.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized

	case errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid):
		return http.StatusForbidden

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Conflict errors
	case store.IsDuplicateError(err):
		return http.StatusBadRequest

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrNoFieldsToUpdate),
		errors.Is(err, store.ErrInvalidSortField):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "Internal server error"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, auth.ErrMissingToken):
		return "Access token required"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid):
		return "Invalid or expired token"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrProductNotFound):
		return "Product not found"

	case store.IsDuplicateError(err):
		return "Email or Username already used"

	case errors.Is(err, store.ErrNoFieldsToUpdate):
		return "No fields to update"

	case errors.Is(err, store.ErrInvalidSortField):
		return "Invalid sort field"

	// Domain validation messages are written for users and safe to expose.
	case errors.Is(err, domain.ErrValidation):
		return err.Error()

	default:
		return "Internal server error"
	}
}

// SanitizeValidationError turns a validator error into a user-facing
// message listing every violated field, e.g.
// "Validation error: name is required; password is too short".
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return "Validation error"
	}

	violations := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		violations = append(violations, fmt.Sprintf(
			"%s %s",
			jsonFieldName(fieldErr.Field()),
			validationTagMessage(fieldErr.Tag()),
		))
	}

	return "Validation error: " + strings.Join(violations, "; ")
}

// jsonFieldName lowercases the first rune of a struct field name so the
// message refers to the JSON field the client actually sent.
func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

// validationTagMessage maps validation tags to user-friendly error messages.
func validationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		return "is too short"
	case "max":
		return "is too long"
	case "numeric", "number":
		return "must be a number"
	case "oneof":
		return "has an invalid value"
	default:
		return "is invalid"
	}
}
