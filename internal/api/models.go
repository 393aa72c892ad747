package api

import (
	"github.com/phrazzld/stockroom-api/internal/domain"
)

// Common request/response structures

// SignupRequest defines the payload for the signup endpoint.
// The optional profile fields are stored verbatim.
type SignupRequest struct {
	Name       string `json:"name"       validate:"required"`
	Email      string `json:"email"      validate:"required,email"`
	UserName   string `json:"userName"   validate:"required"`
	Password   string `json:"password"   validate:"required,min=6,max=72"`
	Dob        string `json:"dob,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	Country    string `json:"country,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Bio        string `json:"bio,omitempty"`
}

// LoginRequest defines the payload for the login endpoint.
// The identifier matches either the email or the username.
type LoginRequest struct {
	EmailOrUsername string `json:"emailOrUsername" validate:"required"`
	Password        string `json:"password"        validate:"required,min=1"`
}

// SignupResponse defines the successful response for the signup endpoint.
// The user is returned with the password hash stripped (domain.User never
// serializes it).
type SignupResponse struct {
	Message     string       `json:"message"`
	AccessToken string       `json:"access_token"`
	User        *domain.User `json:"user"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        *domain.User `json:"user"`
}

// ValidateResponse defines the response for the token validation endpoint.
// It never reports an error; a broken token is just {"valid": false}.
type ValidateResponse struct {
	Valid bool `json:"valid"`
}

// CreateUserRequest defines the payload for the user creation endpoint.
// Structurally identical to SignupRequest but kept separate so the two
// endpoints can evolve independently.
type CreateUserRequest struct {
	Name       string `json:"name"       validate:"required"`
	Email      string `json:"email"      validate:"required,email"`
	UserName   string `json:"userName"   validate:"required"`
	Password   string `json:"password"   validate:"required,min=6,max=72"`
	Dob        string `json:"dob,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	Country    string `json:"country,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Bio        string `json:"bio,omitempty"`
}

// UpdateUserRequest defines the payload for the partial user update
// endpoint. Nil means "leave unchanged"; a present empty string is a
// validation error for the fields that must stay non-empty.
type UpdateUserRequest struct {
	Name       *string `json:"name,omitempty"       validate:"omitempty,min=1"`
	Email      *string `json:"email,omitempty"      validate:"omitempty,email"`
	UserName   *string `json:"userName,omitempty"   validate:"omitempty,min=1"`
	Dob        *string `json:"dob,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Address    *string `json:"address,omitempty"`
	City       *string `json:"city,omitempty"`
	Country    *string `json:"country,omitempty"`
	PostalCode *string `json:"postalCode,omitempty"`
	Bio        *string `json:"bio,omitempty"`
}

// CreateProductRequest defines the payload for the product creation
// endpoint. Price and quantity arrive as strings, matching the frontend.
type CreateProductRequest struct {
	ProductName string `json:"product_name" validate:"required"`
	Description string `json:"description"  validate:"required"`
	Price       string `json:"price"        validate:"required,numeric"`
	Quantity    string `json:"quantity"     validate:"required,number"`
	Category    string `json:"category"     validate:"required"`
}

// UpdateProductRequest defines the payload for the partial product update
// endpoint.
type UpdateProductRequest struct {
	ProductName *string `json:"product_name,omitempty" validate:"omitempty,min=1"`
	Description *string `json:"description,omitempty"  validate:"omitempty,min=1"`
	Price       *string `json:"price,omitempty"        validate:"omitempty,numeric"`
	Quantity    *string `json:"quantity,omitempty"     validate:"omitempty,number"`
	Category    *string `json:"category,omitempty"     validate:"omitempty,min=1"`
}
