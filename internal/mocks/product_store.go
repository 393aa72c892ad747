package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/phrazzld/stockroom-api/internal/domain"
	"github.com/phrazzld/stockroom-api/internal/store"
)

// MockProductStore implements store.ProductStore for testing
type MockProductStore struct {
	// Custom behavior functions
	CreateFn  func(ctx context.Context, product *domain.Product) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	ListFn    func(ctx context.Context, params store.ListParams) ([]*domain.Product, int, error)
	UpdateFn  func(ctx context.Context, id uuid.UUID, update store.ProductUpdate) error
	DeleteFn  func(ctx context.Context, id uuid.UUID) error

	// Default response values
	Product  *domain.Product
	Products []*domain.Product
	Total    int
	Err      error

	// Call tracking for verification
	CreateCalls struct {
		Count    int
		Products []*domain.Product
	}
	ListCalls struct {
		Count  int
		Params []store.ListParams
	}
	UpdateCalls struct {
		Count   int
		IDs     []uuid.UUID
		Updates []store.ProductUpdate
	}
	DeleteCalls struct {
		Count int
		IDs   []uuid.UUID
	}
}

// Create implements the store.ProductStore interface
func (m *MockProductStore) Create(ctx context.Context, product *domain.Product) error {
	m.CreateCalls.Count++
	m.CreateCalls.Products = append(m.CreateCalls.Products, product)

	if m.CreateFn != nil {
		return m.CreateFn(ctx, product)
	}
	return m.Err
}

// GetByID implements the store.ProductStore interface
func (m *MockProductStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.Product, m.Err
}

// List implements the store.ProductStore interface
func (m *MockProductStore) List(
	ctx context.Context,
	params store.ListParams,
) ([]*domain.Product, int, error) {
	m.ListCalls.Count++
	m.ListCalls.Params = append(m.ListCalls.Params, params)

	if m.ListFn != nil {
		return m.ListFn(ctx, params)
	}
	return m.Products, m.Total, m.Err
}

// Update implements the store.ProductStore interface
func (m *MockProductStore) Update(
	ctx context.Context,
	id uuid.UUID,
	update store.ProductUpdate,
) error {
	m.UpdateCalls.Count++
	m.UpdateCalls.IDs = append(m.UpdateCalls.IDs, id)
	m.UpdateCalls.Updates = append(m.UpdateCalls.Updates, update)

	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, update)
	}
	return m.Err
}

// Delete implements the store.ProductStore interface
func (m *MockProductStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.DeleteCalls.Count++
	m.DeleteCalls.IDs = append(m.DeleteCalls.IDs, id)

	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}

// Verify interface compliance at compile time
var _ store.ProductStore = (*MockProductStore)(nil)
