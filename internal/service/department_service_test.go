package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/spec-kit/org-service/internal/domain"
	"github.com/spec-kit/org-service/internal/repository"
	"github.com/spec-kit/org-service/internal/service"
)

func TestDepartmentLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	dir, err := f.directorates.Create(ctx, service.DirectorateInput{Active: true, Name: "Finance"})
	if err != nil {
		t.Fatalf("create directorate: %v", err)
	}

	dept, err := f.departments.Create(ctx, service.DepartmentInput{
		Active:        true,
		Name:          "Accounts",
		Description:   "Accounts Department",
		DirectorateID: &dir.ID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := f.departments.Update(ctx, dept.ID, service.DepartmentInput{
		Active:        true,
		Name:          "Accounting",
		Description:   "Ledgers",
		DirectorateID: int64Ptr(404),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Accounting" || updated.DirectorateID != nil {
		t.Fatalf("unknown directorate should clear the link, got %+v", updated)
	}

	off, err := f.departments.SetStatus(ctx, dept.ID, false)
	if err != nil || off.Active {
		t.Fatalf("deactivate: %+v, %v", off, err)
	}
	active, err := f.departments.List(ctx, repository.PageRequest{}, true)
	if err != nil || active.Total != 0 {
		t.Fatalf("expected no active departments, got %d, %v", active.Total, err)
	}

	found, err := f.departments.Search(ctx, repository.PageRequest{}, "LEDGER")
	if err != nil || found.Total != 1 {
		t.Fatalf("search by description: %d, %v", found.Total, err)
	}

	if err := f.departments.Delete(ctx, dept.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := f.departments.Get(ctx, dept.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDepartmentDeleteWithEmployeesConflicts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	dept, err := f.departments.Create(ctx, service.DepartmentInput{Name: "Sales"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := f.employees.Create(ctx, service.CreateEmployeeInput{
		EmployeeInput: service.EmployeeInput{PersonalID: "1", Position: domain.PositionEmployee, DepartmentID: &dept.ID},
		Password:      "pw",
	}); err != nil {
		t.Fatalf("create employee: %v", err)
	}
	if err := f.departments.Delete(ctx, dept.ID); !errors.Is(err, domain.ErrReferenced) {
		t.Fatalf("expected ErrReferenced, got %v", err)
	}
}
