package domain

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Common product validation errors
var (
	ErrEmptyProductID   = fmt.Errorf("%w: product ID cannot be empty", ErrValidation)
	ErrEmptyProductName = fmt.Errorf("%w: product name cannot be empty", ErrValidation)
	ErrEmptyDescription = fmt.Errorf("%w: description cannot be empty", ErrValidation)
	ErrEmptyPrice       = fmt.Errorf("%w: price cannot be empty", ErrValidation)
	ErrInvalidPrice     = fmt.Errorf("%w: price must be a non-negative number", ErrValidation)
	ErrEmptyQuantity    = fmt.Errorf("%w: quantity cannot be empty", ErrValidation)
	ErrInvalidQuantity  = fmt.Errorf("%w: quantity must be a non-negative integer", ErrValidation)
	ErrEmptyCategory    = fmt.Errorf("%w: category cannot be empty", ErrValidation)
)

// Product represents an inventory item.
//
// Price and Quantity travel as strings on the wire for compatibility with
// the frontend, but are stored as numeric columns so sorting and
// comparison behave numerically.
type Product struct {
	ID          uuid.UUID `json:"id"`
	ProductName string    `json:"product_name"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Quantity    string    `json:"quantity"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewProduct creates a new Product with the given fields.
// It generates a new UUID for the product ID and sets the creation/update
// timestamps. Returns an error if validation fails.
func NewProduct(productName, description, price, quantity, category string) (*Product, error) {
	now := time.Now().UTC()
	product := &Product{
		ID:          uuid.New(),
		ProductName: productName,
		Description: description,
		Price:       price,
		Quantity:    quantity,
		Category:    category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	return product, nil
}

// Validate checks if the Product has valid data.
// Returns an error if any field fails validation.
func (p *Product) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyProductID
	}

	if p.ProductName == "" {
		return ErrEmptyProductName
	}

	if p.Description == "" {
		return ErrEmptyDescription
	}

	if p.Price == "" {
		return ErrEmptyPrice
	}
	if err := ValidatePrice(p.Price); err != nil {
		return err
	}

	if p.Quantity == "" {
		return ErrEmptyQuantity
	}
	if err := ValidateQuantity(p.Quantity); err != nil {
		return err
	}

	if p.Category == "" {
		return ErrEmptyCategory
	}

	return nil
}

// ValidatePrice checks that a price string parses as a non-negative number.
func ValidatePrice(price string) error {
	v, err := strconv.ParseFloat(price, 64)
	if err != nil || v < 0 {
		return ErrInvalidPrice
	}
	return nil
}

// ValidateQuantity checks that a quantity string parses as a non-negative integer.
func ValidateQuantity(quantity string) error {
	v, err := strconv.ParseInt(quantity, 10, 64)
	if err != nil || v < 0 {
		return ErrInvalidQuantity
	}
	return nil
}
