package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/stockroom-api/internal/domain"
	"github.com/phrazzld/stockroom-api/internal/store"
)

// parseIDParam extracts and parses the {id} URL parameter.
func parseIDParam(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, domain.ErrInvalidID
	}
	return id, nil
}

// parseListParams reads search/sortBy/sortOrder/page/limit from the query
// string, validating sortBy against the given allow-list. Unset parameters
// keep their zero value; store.ListParams.Normalize applies defaults.
func parseListParams(r *http.Request, sortFields map[string]bool) (store.ListParams, error) {
	q := r.URL.Query()
	params := store.ListParams{
		Search: q.Get("search"),
		SortBy: q.Get("sortBy"),
	}

	if params.SortBy != "" && !sortFields[params.SortBy] {
		return params, fmt.Errorf("%w: %s", store.ErrInvalidSortField, params.SortBy)
	}

	if order := q.Get("sortOrder"); order != "" {
		switch strings.ToUpper(order) {
		case string(store.SortAsc), string(store.SortDesc):
			params.SortOrder = store.SortOrder(strings.ToUpper(order))
		default:
			return params, fmt.Errorf("%w: sortOrder must be ASC or DESC", domain.ErrValidation)
		}
	}

	var err error
	if params.Page, err = positiveIntParam(q.Get("page"), "page"); err != nil {
		return params, err
	}
	if params.Limit, err = positiveIntParam(q.Get("limit"), "limit"); err != nil {
		return params, err
	}

	return params, nil
}

// positiveIntParam parses an optional query parameter that must be a
// positive integer when present. An empty value parses to zero, which
// Normalize later replaces with the default.
func positiveIntParam(value, name string) (int, error) {
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", domain.ErrValidation, name)
	}
	return n, nil
}
