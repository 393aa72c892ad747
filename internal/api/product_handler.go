package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/stockroom-api/internal/api/shared"
	"github.com/phrazzld/stockroom-api/internal/domain"
	"github.com/phrazzld/stockroom-api/internal/store"
)

// ProductHandler handles the product management API requests.
type ProductHandler struct {
	productStore store.ProductStore
	validator    *validator.Validate
}

// NewProductHandler creates a new ProductHandler with the given dependencies.
func NewProductHandler(productStore store.ProductStore) *ProductHandler {
	return &ProductHandler{
		productStore: productStore,
		validator:    validator.New(),
	}
}

// List handles the GET /api/products endpoint. It returns a page of
// products wrapped in the standard pagination envelope.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	params, err := parseListParams(r, store.ProductSortFields)
	if err != nil {
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
		return
	}
	params = params.Normalize()

	products, total, err := h.productStore.List(r.Context(), params)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.PagedResponse{
		Data:       products,
		Total:      total,
		Page:       params.Page,
		Limit:      params.Limit,
		TotalPages: params.TotalPages(total),
	})
}

// Get handles the GET /api/products/{id} endpoint.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	product, err := h.productStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, product)
}

// Create handles the POST /api/products endpoint.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	product, err := domain.NewProduct(req.ProductName, req.Description, req.Price, req.Quantity, req.Category)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	if err := h.productStore.Create(r.Context(), product); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, product)
}

// Update handles the PATCH /api/products/{id} endpoint. Only the fields
// present in the body are applied.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	var req UpdateProductRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	update := store.ProductUpdate{
		ProductName: req.ProductName,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Category:    req.Category,
	}

	if err := h.productStore.Update(r.Context(), id, update); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{
		Message: "Product updated successfully",
	})
}

// Delete handles the DELETE /api/products/{id} endpoint.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	if err := h.productStore.Delete(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{
		Message: "Product deleted successfully",
	})
}
