package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/org-service/internal/domain"
)

func TestMapPgError(t *testing.T) {
	unknownUnique := &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "departments_name_key"}
	plain := errors.New("connection reset")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "nil", in: nil, want: nil},
		{name: "no rows", in: pgx.ErrNoRows, want: domain.ErrNotFound},
		{name: "wrapped no rows", in: fmt.Errorf("get employee: %w", pgx.ErrNoRows), want: domain.ErrNotFound},
		{
			name: "duplicate personal id",
			in:   &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: constraintPersonalID, Detail: "Key (personal_id)=(10001) already exists."},
			want: domain.ErrDuplicatePersonalID,
		},
		{
			name: "director already assigned",
			in:   &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: constraintDirector},
			want: domain.ErrDirectorAlreadyAssigned,
		},
		{
			name: "foreign key",
			in:   &pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "employees_department_id_fkey"},
			want: domain.ErrReferenced,
		},
		{name: "unknown unique constraint", in: unknownUnique, want: unknownUnique},
		{name: "other error", in: plain, want: plain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapPgError(tt.in)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("expected nil, got %v", got)
				}
				return
			}
			if !errors.Is(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
