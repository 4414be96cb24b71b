package repository_test

import (
	"errors"
	"testing"

	"github.com/spec-kit/org-service/internal/domain"
	"github.com/spec-kit/org-service/internal/repository"
)

func TestPageRequestNormalize(t *testing.T) {
	tests := []struct {
		in     repository.PageRequest
		page   int
		size   int
		offset int
	}{
		{in: repository.PageRequest{}, page: 0, size: repository.DefaultPageSize, offset: 0},
		{in: repository.PageRequest{Page: -3, Size: 5}, page: 0, size: 5, offset: 0},
		{in: repository.PageRequest{Page: 2, Size: 10}, page: 2, size: 10, offset: 20},
		{in: repository.PageRequest{Page: 1, Size: 1000}, page: 1, size: repository.MaxPageSize, offset: repository.MaxPageSize},
	}

	for _, tt := range tests {
		got := tt.in.Normalize()
		if got.Page != tt.page || got.Size != tt.size || tt.in.Offset() != tt.offset {
			t.Errorf("%+v: got page=%d size=%d offset=%d", tt.in, got.Page, got.Size, tt.in.Offset())
		}
	}
}

func TestOrderClause(t *testing.T) {
	clause, err := repository.OrderClause([]repository.SortOrder{
		{Field: "surname", Desc: true},
		{Field: "name"},
	}, repository.EmployeeSortFields)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clause != "surname DESC, name ASC, id ASC" {
		t.Fatalf("unexpected clause %q", clause)
	}

	clause, err = repository.OrderClause([]repository.SortOrder{{Field: "id", Desc: true}}, repository.DepartmentSortFields)
	if err != nil || clause != "id DESC" {
		t.Fatalf("unexpected clause %q, %v", clause, err)
	}

	if _, err := repository.OrderClause([]repository.SortOrder{{Field: "name; DROP TABLE employees"}}, repository.EmployeeSortFields); !errors.Is(err, domain.ErrInvalidSort) {
		t.Fatalf("expected ErrInvalidSort, got %v", err)
	}
}

func TestSearchPattern(t *testing.T) {
	if got := repository.SearchPattern("FiNance"); got != "%finance%" {
		t.Fatalf("unexpected pattern %q", got)
	}
}
