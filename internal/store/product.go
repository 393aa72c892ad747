package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/stockroom-api/internal/domain"
)

// ProductUpdate carries the fields of a partial product update. Nil
// pointers mean "leave unchanged".
type ProductUpdate struct {
	ProductName *string
	Description *string
	Price       *string
	Quantity    *string
	Category    *string
}

// IsEmpty reports whether the update names no fields at all.
func (u ProductUpdate) IsEmpty() bool {
	return u.ProductName == nil && u.Description == nil && u.Price == nil &&
		u.Quantity == nil && u.Category == nil
}

// ProductSortFields is the allow-list of sortable product columns.
var ProductSortFields = map[string]bool{
	"product_name": true,
	"category":     true,
	"price":        true,
	"quantity":     true,
	"createdAt":    true,
	"updatedAt":    true,
}

// ProductStore defines the interface for product data persistence.
type ProductStore interface {
	// Create saves a new product to the store.
	// Returns validation errors from the domain Product if data is invalid.
	Create(ctx context.Context, product *domain.Product) error

	// GetByID retrieves a product by its unique ID.
	// Returns ErrProductNotFound if the product does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)

	// List returns a page of products plus the total row count for the
	// filter. Search matches product_name as a substring.
	List(ctx context.Context, params ListParams) ([]*domain.Product, int, error)

	// Update applies a partial update to an existing product, refreshing
	// updatedAt. Returns ErrProductNotFound if the product does not exist
	// and ErrNoFieldsToUpdate if the update is empty.
	Update(ctx context.Context, id uuid.UUID, update ProductUpdate) error

	// Delete removes a product from the store by its ID.
	// Returns ErrProductNotFound if the product does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
