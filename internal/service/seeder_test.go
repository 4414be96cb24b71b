package service_test

import (
	"context"
	"testing"

	"github.com/spec-kit/org-service/internal/repository"
)

func TestSeedSampleData(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	loaded, err := f.seeder.SeedSampleData(ctx)
	if err != nil || !loaded {
		t.Fatalf("seed: %v, loaded=%v", err, loaded)
	}

	dirs, _ := f.directorates.List(ctx, repository.PageRequest{}, false)
	depts, _ := f.departments.List(ctx, repository.PageRequest{}, false)
	emps, _ := f.employees.List(ctx, repository.PageRequest{}, false)
	if dirs.Total != 5 || depts.Total != 5 || emps.Total != 5 {
		t.Fatalf("unexpected counts: %d directorates, %d departments, %d employees", dirs.Total, depts.Total, emps.Total)
	}

	peter, err := f.store.Employees.GetByPersonalID(ctx, "10001")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	finance, err := f.store.Directorates.GetByDirectorID(ctx, peter.ID)
	if err != nil || finance.Name != "Finance" {
		t.Fatalf("expected Peter to direct Finance, got %+v, %v", finance, err)
	}

	again, err := f.seeder.SeedSampleData(ctx)
	if err != nil || again {
		t.Fatalf("second seed should be a no-op: %v, loaded=%v", err, again)
	}
}
