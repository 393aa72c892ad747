package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/phrazzld/stockroom-api/internal/domain"
	"github.com/phrazzld/stockroom-api/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	// Custom behavior functions
	CreateFn               func(ctx context.Context, user *domain.User) error
	GetByIDFn              func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailOrUserNameFn func(ctx context.Context, identifier string) (*domain.User, error)
	ListFn                 func(ctx context.Context, params store.ListParams) ([]*domain.User, int, error)
	UpdateFn               func(ctx context.Context, id uuid.UUID, update store.UserUpdate) error
	DeleteFn               func(ctx context.Context, id uuid.UUID) error

	// Default response values
	User  *domain.User
	Users []*domain.User
	Total int
	Err   error

	// Call tracking for verification
	CreateCalls struct {
		Count int
		Users []*domain.User
	}
	ListCalls struct {
		Count  int
		Params []store.ListParams
	}
	UpdateCalls struct {
		Count   int
		IDs     []uuid.UUID
		Updates []store.UserUpdate
	}
	DeleteCalls struct {
		Count int
		IDs   []uuid.UUID
	}
}

// Create implements the store.UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	m.CreateCalls.Count++
	m.CreateCalls.Users = append(m.CreateCalls.Users, user)

	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	return m.Err
}

// GetByID implements the store.UserStore interface
func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.User, m.Err
}

// GetByEmailOrUserName implements the store.UserStore interface
func (m *MockUserStore) GetByEmailOrUserName(
	ctx context.Context,
	identifier string,
) (*domain.User, error) {
	if m.GetByEmailOrUserNameFn != nil {
		return m.GetByEmailOrUserNameFn(ctx, identifier)
	}
	return m.User, m.Err
}

// List implements the store.UserStore interface
func (m *MockUserStore) List(
	ctx context.Context,
	params store.ListParams,
) ([]*domain.User, int, error) {
	m.ListCalls.Count++
	m.ListCalls.Params = append(m.ListCalls.Params, params)

	if m.ListFn != nil {
		return m.ListFn(ctx, params)
	}
	return m.Users, m.Total, m.Err
}

// Update implements the store.UserStore interface
func (m *MockUserStore) Update(
	ctx context.Context,
	id uuid.UUID,
	update store.UserUpdate,
) error {
	m.UpdateCalls.Count++
	m.UpdateCalls.IDs = append(m.UpdateCalls.IDs, id)
	m.UpdateCalls.Updates = append(m.UpdateCalls.Updates, update)

	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, update)
	}
	return m.Err
}

// Delete implements the store.UserStore interface
func (m *MockUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.DeleteCalls.Count++
	m.DeleteCalls.IDs = append(m.DeleteCalls.IDs, id)

	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}

// Verify interface compliance at compile time
var _ store.UserStore = (*MockUserStore)(nil)
