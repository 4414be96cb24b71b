package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/spec-kit/org-service/internal/domain"
	"github.com/spec-kit/org-service/internal/events"
	"github.com/spec-kit/org-service/internal/repository"
	"github.com/spec-kit/org-service/internal/service"
)

func TestEmployeeCreate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	dept, err := f.departments.Create(ctx, service.DepartmentInput{Active: true, Name: "Accounts"})
	if err != nil {
		t.Fatalf("create department: %v", err)
	}

	in := service.CreateEmployeeInput{
		EmployeeInput: service.EmployeeInput{
			Active:       true,
			Name:         "Ivan",
			Surname:      "Ivanov",
			PersonalID:   "10002",
			Age:          25,
			Position:     domain.PositionDepartmentHead,
			DepartmentID: &dept.ID,
		},
		Password: "secret",
	}
	created, err := f.employees.Create(ctx, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 || created.DepartmentID == nil || *created.DepartmentID != dept.ID {
		t.Fatalf("unexpected employee %+v", created)
	}
	if !f.hasher.Verify("secret", created.PasswordHash) {
		t.Fatal("password must be stored hashed")
	}

	if _, err := f.employees.Create(ctx, in); !errors.Is(err, domain.ErrDuplicatePersonalID) {
		t.Fatalf("expected ErrDuplicatePersonalID, got %v", err)
	}

	in.PersonalID = "10003"
	in.DepartmentID = int64Ptr(404)
	orphan, err := f.employees.Create(ctx, in)
	if err != nil {
		t.Fatalf("create with unknown department: %v", err)
	}
	if orphan.DepartmentID != nil {
		t.Fatalf("unknown department should be dropped, got %d", *orphan.DepartmentID)
	}
}

func TestEmployeeUpdateKeepsPassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.employees.Create(ctx, service.CreateEmployeeInput{
		EmployeeInput: service.EmployeeInput{Active: true, Name: "Mario", PersonalID: "10005", Position: domain.PositionEmployee},
		Password:      "keep-me",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := f.employees.Update(ctx, created.ID, service.EmployeeInput{
		Active:     true,
		Name:       "Mario",
		Surname:    "Giev",
		PersonalID: "10005",
		Age:        29,
		Position:   domain.PositionDepartmentHead,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Surname != "Giev" || updated.Position != domain.PositionDepartmentHead {
		t.Fatalf("unexpected update result %+v", updated)
	}
	if _, err := f.auth.Authenticate(ctx, "10005", "keep-me"); err != nil {
		t.Fatalf("password should survive update: %v", err)
	}

	if _, err := f.employees.UpdatePassword(ctx, created.ID, "changed"); err != nil {
		t.Fatalf("update password: %v", err)
	}
	if _, err := f.auth.Authenticate(ctx, "10005", "changed"); err != nil {
		t.Fatalf("new password should work: %v", err)
	}

	if _, err := f.employees.Update(ctx, 999, service.EmployeeInput{}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestEmployeeStatusPublishesOnChange(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created, err := f.employees.Create(ctx, service.CreateEmployeeInput{
		EmployeeInput: service.EmployeeInput{Active: true, PersonalID: "1", Position: domain.PositionEmployee},
		Password:      "pw",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := f.employees.SetStatus(ctx, created.ID, true); err != nil {
		t.Fatalf("activate: %v", err)
	}
	if _, err := f.employees.SetStatus(ctx, created.ID, false); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	changes := f.recorded.ofType(events.EventEmployeeStatusChanged)
	if len(changes) != 1 {
		t.Fatalf("expected exactly one status event, got %d", len(changes))
	}
	payload := changes[0].Payload.(events.EmployeeStatusChangedPayload)
	if !payload.OldActive || payload.NewActive {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestEmployeeListSearchDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	if _, err := f.seeder.SeedSampleData(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	page, err := f.employees.List(ctx, repository.PageRequest{Size: 2}, true)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Total != 5 || len(page.Items) != 2 {
		t.Fatalf("unexpected page total=%d len=%d", page.Total, len(page.Items))
	}

	found, err := f.employees.Search(ctx, repository.PageRequest{}, "GIEV")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if found.Total != 2 {
		t.Fatalf("expected Georgiev and Giev, got %d", found.Total)
	}

	mario := found.Items[0]
	for _, e := range found.Items {
		if e.PersonalID == "10005" {
			mario = e
		}
	}
	if err := f.employees.Delete(ctx, mario.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := f.employees.Get(ctx, mario.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := f.employees.Delete(ctx, mario.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestDemotedDirectorLeavesDirectorate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	boss := createEmployee(t, f, "10001", domain.PositionDirectorateDirector)
	dir, err := f.directorates.Create(ctx, service.DirectorateInput{Active: true, Name: "Finance", DirectorID: &boss.ID})
	if err != nil {
		t.Fatalf("create directorate: %v", err)
	}

	// unrelated edits keep the assignment
	if _, err := f.employees.Update(ctx, boss.ID, service.EmployeeInput{
		Active: true, Name: "Peter", PersonalID: "10001", Position: domain.PositionDirectorateDirector,
	}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if got, _ := f.directorates.Get(ctx, dir.ID); got.DirectorID == nil {
		t.Fatal("director should be kept while the position is unchanged")
	}

	if _, err := f.employees.Update(ctx, boss.ID, service.EmployeeInput{
		Active: true, Name: "Peter", PersonalID: "10001", Position: domain.PositionDepartmentHead,
	}); err != nil {
		t.Fatalf("demote: %v", err)
	}
	got, err := f.directorates.Get(ctx, dir.ID)
	if err != nil {
		t.Fatalf("get directorate: %v", err)
	}
	if got.DirectorID != nil {
		t.Fatalf("expected director cleared, got %d", *got.DirectorID)
	}
	unassigned := f.recorded.ofType(events.EventDirectorUnassigned)
	if len(unassigned) != 1 {
		t.Fatalf("expected one director_unassigned event, got %d", len(unassigned))
	}
	if p, ok := unassigned[0].Payload.(events.DirectorUnassignedPayload); !ok || p.DirectorateID != dir.ID || p.EmployeeID != boss.ID {
		t.Fatalf("unexpected payload %+v", unassigned[0].Payload)
	}

	if err := f.employees.Delete(ctx, boss.ID); err != nil {
		t.Fatalf("former director should be deletable: %v", err)
	}
}
