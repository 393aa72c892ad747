package store

import "strings"

// SortOrder is the direction of a list ordering.
type SortOrder string

// Valid sort orders. The wire values match what the frontend sends.
const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

// Default listing parameters, matching the reference API behavior.
const (
	DefaultSortField = "createdAt"
	DefaultPage      = 1
	DefaultLimit     = 10
)

// ListParams carries filtering, sorting, and pagination for list operations.
// Page is 1-based. SortBy must name a column in the entity's allow-list;
// implementations return ErrInvalidSortField otherwise.
type ListParams struct {
	Search    string
	SortBy    string
	SortOrder SortOrder
	Page      int
	Limit     int
}

// Normalize fills zero values with defaults. It does not validate SortBy;
// that stays the store implementation's job since the allow-list is
// entity-specific.
func (p ListParams) Normalize() ListParams {
	if p.SortBy == "" {
		p.SortBy = DefaultSortField
	}
	switch SortOrder(strings.ToUpper(string(p.SortOrder))) {
	case SortAsc:
		p.SortOrder = SortAsc
	default:
		p.SortOrder = SortDesc
	}
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	return p
}

// Offset returns the 0-based row offset for the normalized page/limit.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages computes the page count for a result set of the given size.
func (p ListParams) TotalPages(total int) int {
	if total == 0 {
		return 0
	}
	return (total + p.Limit - 1) / p.Limit
}
