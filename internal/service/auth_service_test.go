package service_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/spec-kit/org-service/internal/domain"
	"github.com/spec-kit/org-service/internal/events"
	"github.com/spec-kit/org-service/internal/service"
)

func TestRegisterThenAuthenticate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	registered, err := f.auth.Register(ctx, service.RegisterInput{
		FirstName:  "Test",
		LastName:   "User",
		PersonalID: "99999",
		Password:   "pw",
		Age:        22,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	roles, err := f.tokens.ExtractRoles(registered.Token)
	if err != nil || !reflect.DeepEqual(roles, []string{"ROLE_EMPLOYEE"}) {
		t.Fatalf("registered roles = %v, %v", roles, err)
	}

	stored, err := f.store.Employees.GetByPersonalID(ctx, "99999")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if !stored.Active || stored.Position != domain.PositionEmployee || stored.DepartmentID != nil {
		t.Fatalf("unexpected stored employee %+v", stored)
	}
	if stored.PasswordHash == "pw" {
		t.Fatal("password stored in clear")
	}

	authenticated, err := f.auth.Authenticate(ctx, "99999", "pw")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if !f.tokens.Validate(authenticated.Token, "99999") {
		t.Fatal("expected a valid token")
	}
	if !reflect.DeepEqual(authenticated.Roles, []string{"ROLE_EMPLOYEE"}) {
		t.Fatalf("authenticated roles = %v", authenticated.Roles)
	}

	if _, err := f.auth.Authenticate(ctx, "99999", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	if len(f.recorded.ofType(events.EventEmployeeRegistered)) != 1 || len(f.recorded.ofType(events.EventEmployeeAuthenticated)) != 1 {
		t.Fatalf("unexpected audit events %+v", f.recorded.events)
	}
}

func TestAuthenticateUnknownEmployee(t *testing.T) {
	f := newFixture(t)
	if _, err := f.auth.Authenticate(context.Background(), "00000", "pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticateInactiveEmployee(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.auth.Register(ctx, service.RegisterInput{PersonalID: "77777", Password: "pw"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := f.employees.SetStatus(ctx, res.Employee.ID, false); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if _, err := f.auth.Authenticate(ctx, "77777", "pw"); !errors.Is(err, domain.ErrAccountDisabled) {
		t.Fatalf("expected ErrAccountDisabled, got %v", err)
	}
	if _, err := f.auth.Authenticate(ctx, "77777", "nope"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password on a disabled account must still be invalid credentials, got %v", err)
	}
}

func TestAuthenticateIssuesRolesOfPosition(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	if _, err := f.seeder.SeedSampleData(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	tests := []struct {
		personalID string
		roles      []string
	}{
		{"10001", []string{"ROLE_DIRECTORATE_DIRECTOR", "ROLE_DEPARTMENT_HEAD", "ROLE_EMPLOYEE"}},
		{"10002", []string{"ROLE_DEPARTMENT_HEAD", "ROLE_EMPLOYEE"}},
		{"10005", []string{"ROLE_EMPLOYEE"}},
	}
	for _, tt := range tests {
		res, err := f.auth.Authenticate(ctx, tt.personalID, "password")
		if err != nil {
			t.Fatalf("%s: %v", tt.personalID, err)
		}
		got, err := f.tokens.ExtractRoles(res.Token)
		if err != nil || !reflect.DeepEqual(got, tt.roles) {
			t.Errorf("%s: roles = %v, %v", tt.personalID, got, err)
		}
	}
}

func TestRegisterDuplicatePersonalIDFailsInStore(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	in := service.RegisterInput{PersonalID: "55555", Password: "pw"}

	if _, err := f.auth.Register(ctx, in); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := f.auth.Register(ctx, in); !errors.Is(err, domain.ErrDuplicatePersonalID) {
		t.Fatalf("expected ErrDuplicatePersonalID, got %v", err)
	}
}
