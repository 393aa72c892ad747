package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/stockroom-api/internal/domain"
)

// UserUpdate carries the fields of a partial user update. Nil pointers mean
// "leave unchanged"; non-nil pointers are applied verbatim. The password is
// deliberately absent: credential changes go through the auth flow, not the
// generic profile update.
type UserUpdate struct {
	Name       *string
	Email      *string
	UserName   *string
	Dob        *string
	Phone      *string
	Address    *string
	City       *string
	Country    *string
	PostalCode *string
	Bio        *string
}

// IsEmpty reports whether the update names no fields at all.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.UserName == nil &&
		u.Dob == nil && u.Phone == nil && u.Address == nil && u.City == nil &&
		u.Country == nil && u.PostalCode == nil && u.Bio == nil
}

// UserSortFields is the allow-list of sortable user columns.
var UserSortFields = map[string]bool{
	"name":      true,
	"email":     true,
	"userName":  true,
	"createdAt": true,
	"updatedAt": true,
}

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The caller must have hashed
	// the password already; only HashedPassword is persisted.
	// Returns ErrEmailExists or ErrUserNameExists on a uniqueness conflict.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmailOrUserName retrieves the user whose email or username
	// equals the given identifier. Returns ErrUserNotFound if no user
	// matches.
	GetByEmailOrUserName(ctx context.Context, identifier string) (*domain.User, error)

	// List returns a page of users plus the total row count for the
	// filter. Search matches name, email, or username as a substring.
	List(ctx context.Context, params ListParams) ([]*domain.User, int, error)

	// Update applies a partial update to an existing user, refreshing
	// updatedAt. Returns ErrUserNotFound if the user does not exist,
	// ErrNoFieldsToUpdate if the update is empty, and ErrEmailExists or
	// ErrUserNameExists if another user already holds the new value.
	Update(ctx context.Context, id uuid.UUID, update UserUpdate) error

	// Delete removes a user from the store by their ID.
	// Returns ErrUserNotFound if the user does not exist.
	// This operation is permanent and cannot be undone.
	Delete(ctx context.Context, id uuid.UUID) error
}
