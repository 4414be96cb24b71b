package repository

import (
	"fmt"
	"strings"

	"github.com/spec-kit/org-service/internal/domain"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// SortOrder orders results by a public field name.
type SortOrder struct {
	Field string
	Desc  bool
}

// PageRequest selects a zero-based page of results.
type PageRequest struct {
	Page int
	Size int
	Sort []SortOrder
}

// Normalize clamps page and size into their valid ranges.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

// Offset returns the number of rows to skip.
func (p PageRequest) Offset() int {
	n := p.Normalize()
	return n.Page * n.Size
}

// Page is one slice of a larger result set.
type Page[T any] struct {
	Items []T
	Total int64
	Page  int
	Size  int
}

// Empty reports whether the page holds no items.
func (p Page[T]) Empty() bool {
	return len(p.Items) == 0
}

// ListFilter narrows list queries.
type ListFilter struct {
	ActiveOnly bool
}

// Sortable fields per entity, mapped to column names.
var (
	EmployeeSortFields = map[string]string{
		"id":            "id",
		"active":        "active",
		"name":          "name",
		"surname":       "surname",
		"personal_id":   "personal_id",
		"age":           "age",
		"position":      "position",
		"department_id": "department_id",
	}
	DepartmentSortFields = map[string]string{
		"id":             "id",
		"active":         "active",
		"name":           "name",
		"description":    "description",
		"directorate_id": "directorate_id",
	}
	DirectorateSortFields = map[string]string{
		"id":          "id",
		"active":      "active",
		"name":        "name",
		"description": "description",
		"director_id": "director_id",
	}
)

// OrderClause renders sort orders as an SQL ORDER BY clause. Unknown fields
// yield ErrInvalidSort. The id column is always appended as a tie breaker.
func OrderClause(sorts []SortOrder, fields map[string]string) (string, error) {
	parts := make([]string, 0, len(sorts)+1)
	seenID := false
	for _, s := range sorts {
		column, ok := fields[s.Field]
		if !ok {
			return "", fmt.Errorf("%w: unknown field %q", domain.ErrInvalidSort, s.Field)
		}
		dir := "ASC"
		if s.Desc {
			dir = "DESC"
		}
		if column == "id" {
			seenID = true
		}
		parts = append(parts, column+" "+dir)
	}
	if !seenID {
		parts = append(parts, "id ASC")
	}
	return strings.Join(parts, ", "), nil
}

// SearchPattern builds a lower-cased LIKE pattern for term.
func SearchPattern(term string) string {
	return "%" + strings.ToLower(term) + "%"
}
