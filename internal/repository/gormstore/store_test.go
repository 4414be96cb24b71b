package gormstore

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/spec-kit/org-service/internal/domain"
)

func TestMapError(t *testing.T) {
	plain := errors.New("driver: bad connection")
	lockTimeout := &mysql.MySQLError{Number: 1205, Message: "Lock wait timeout exceeded"}

	tests := []struct {
		name      string
		in        error
		duplicate error
		want      error
	}{
		{name: "nil", in: nil, duplicate: domain.ErrDuplicatePersonalID, want: nil},
		{name: "record not found", in: gorm.ErrRecordNotFound, duplicate: domain.ErrDuplicatePersonalID, want: domain.ErrNotFound},
		{name: "wrapped not found", in: fmt.Errorf("first: %w", gorm.ErrRecordNotFound), duplicate: domain.ErrDuplicatePersonalID, want: domain.ErrNotFound},
		{
			name:      "duplicate personal id",
			in:        &mysql.MySQLError{Number: mysqlDuplicateEntry, Message: "Duplicate entry '10001' for key 'employees_personal_id_key'"},
			duplicate: domain.ErrDuplicatePersonalID,
			want:      domain.ErrDuplicatePersonalID,
		},
		{
			name:      "duplicate director",
			in:        &mysql.MySQLError{Number: mysqlDuplicateEntry, Message: "Duplicate entry '11' for key 'directorates_director_id_key'"},
			duplicate: domain.ErrDirectorAlreadyAssigned,
			want:      domain.ErrDirectorAlreadyAssigned,
		},
		{
			name:      "row is referenced",
			in:        &mysql.MySQLError{Number: mysqlRowIsReferenced, Message: "Cannot delete or update a parent row"},
			duplicate: domain.ErrReferenced,
			want:      domain.ErrReferenced,
		},
		{
			name:      "no referenced row",
			in:        &mysql.MySQLError{Number: mysqlNoReferencedRow, Message: "Cannot add or update a child row"},
			duplicate: domain.ErrDuplicatePersonalID,
			want:      domain.ErrReferenced,
		},
		{name: "other mysql error", in: lockTimeout, duplicate: domain.ErrDuplicatePersonalID, want: lockTimeout},
		{name: "other error", in: plain, duplicate: domain.ErrDuplicatePersonalID, want: plain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(tt.in, tt.duplicate)
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
