package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/stockroom-api/internal/domain"
	"github.com/phrazzld/stockroom-api/internal/service/auth"
	"github.com/phrazzld/stockroom-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"missing token", auth.ErrMissingToken, http.StatusUnauthorized},
		{"invalid token", auth.ErrInvalidToken, http.StatusForbidden},
		{"expired token", auth.ErrExpiredToken, http.StatusForbidden},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"product not found", store.ErrProductNotFound, http.StatusNotFound},
		{"generic not found", store.ErrNotFound, http.StatusNotFound},
		{"duplicate email", store.ErrEmailExists, http.StatusBadRequest},
		{"duplicate username", store.ErrUserNameExists, http.StatusBadRequest},
		{"domain validation", domain.ErrEmptyName, http.StatusBadRequest},
		{"invalid ID", domain.ErrInvalidID, http.StatusBadRequest},
		{"empty update", store.ErrNoFieldsToUpdate, http.StatusBadRequest},
		{"invalid sort field", store.ErrInvalidSortField, http.StatusBadRequest},
		{"wrapped store error", fmt.Errorf("listing users: %w", store.ErrInvalidSortField), http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil error", nil, "Internal server error"},
		{"invalid credentials", auth.ErrInvalidCredentials, "Invalid credentials"},
		{"user not found", store.ErrUserNotFound, "User not found"},
		{"product not found", store.ErrProductNotFound, "Product not found"},
		{"duplicate email", store.ErrEmailExists, "Email or Username already used"},
		{"duplicate username", store.ErrUserNameExists, "Email or Username already used"},
		{"empty update", store.ErrNoFieldsToUpdate, "No fields to update"},
		{"invalid sort field", store.ErrInvalidSortField, "Invalid sort field"},
		{
			"domain validation passes its own message through",
			domain.ErrPasswordTooShort,
			domain.ErrPasswordTooShort.Error(),
		},
		{"database error stays internal", errors.New("pq: relation does not exist"), "Internal server error"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, GetSafeErrorMessage(tc.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	validate := validator.New()

	t.Run("single violation", func(t *testing.T) {
		t.Parallel()
		err := validate.Struct(LoginRequest{Password: "secret"})
		assert.Equal(t, "Validation error: emailOrUsername is required", SanitizeValidationError(err))
	})

	t.Run("multiple violations are joined", func(t *testing.T) {
		t.Parallel()
		err := validate.Struct(SignupRequest{Name: "Test", Email: "bad-email", UserName: "tester", Password: "ab"})
		assert.Equal(t,
			"Validation error: email must be a valid email; password is too short",
			SanitizeValidationError(err))
	})

	t.Run("non-validator error gets generic message", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("boom")))
	})
}
