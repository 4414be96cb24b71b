package domain_test

import (
	"errors"
	"testing"

	"github.com/spec-kit/org-service/internal/domain"
)

func TestSetDirectorAcceptsDirector(t *testing.T) {
	d := &domain.Directorate{Name: "Finance"}
	director := &domain.Employee{ID: 7, Position: domain.PositionDirectorateDirector}

	if err := d.SetDirector(director); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.DirectorID == nil || *d.DirectorID != 7 {
		t.Fatalf("expected director 7, got %v", d.DirectorID)
	}
}

func TestSetDirectorRejectsLowerPositions(t *testing.T) {
	existing := int64(3)

	for _, p := range []domain.Position{domain.PositionEmployee, domain.PositionDepartmentHead} {
		for _, start := range []*int64{nil, &existing} {
			d := &domain.Directorate{DirectorID: start}
			err := d.SetDirector(&domain.Employee{ID: 9, Position: p})
			if !errors.Is(err, domain.ErrInvalidDirectorAssignment) {
				t.Errorf("%s: expected ErrInvalidDirectorAssignment, got %v", p, err)
			}
			if d.DirectorID != start {
				t.Errorf("%s: director changed from %v to %v", p, start, d.DirectorID)
			}
		}
	}
}

func TestSetDirectorRejectsNil(t *testing.T) {
	d := &domain.Directorate{}
	if err := d.SetDirector(nil); !errors.Is(err, domain.ErrInvalidDirectorAssignment) {
		t.Fatalf("expected rejection, got %v", err)
	}
	if d.DirectorID != nil {
		t.Fatalf("director should stay unset")
	}
}
