package domain_test

import (
	"errors"
	"testing"

	"github.com/spec-kit/org-service/internal/domain"
)

func TestPositionRanksAreStrictlyOrdered(t *testing.T) {
	employee := domain.PositionEmployee.Rank()
	head := domain.PositionDepartmentHead.Rank()
	director := domain.PositionDirectorateDirector.Rank()

	if !(employee < head && head < director) {
		t.Fatalf("unexpected ranks: employee=%d head=%d director=%d", employee, head, director)
	}
	if domain.Position("JANITOR").Rank() != -1 {
		t.Fatalf("unknown position should have rank -1")
	}
}

func TestPositionFromLabel(t *testing.T) {
	tests := []struct {
		label   string
		want    domain.Position
		wantErr bool
	}{
		{label: "Employee", want: domain.PositionEmployee},
		{label: "head of department", want: domain.PositionDepartmentHead},
		{label: "DIRECTOR OF THE DIRECTORATE", want: domain.PositionDirectorateDirector},
		{label: "Director", wantErr: true},
		{label: " Employee", wantErr: true},
		{label: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := domain.PositionFromLabel(tt.label)
		if tt.wantErr {
			if !errors.Is(err, domain.ErrUnknownPosition) {
				t.Errorf("label %q: expected ErrUnknownPosition, got %v", tt.label, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("label %q: unexpected error %v", tt.label, err)
			continue
		}
		if got != tt.want {
			t.Errorf("label %q: got %s want %s", tt.label, got, tt.want)
		}
	}
}

func TestPositionLabelRoundTrip(t *testing.T) {
	for _, p := range domain.Positions() {
		got, err := domain.PositionFromLabel(p.Label())
		if err != nil || got != p {
			t.Errorf("label round trip for %s: got %s, %v", p, got, err)
		}
	}
}

func TestParsePosition(t *testing.T) {
	p, err := domain.ParsePosition("department_head")
	if err != nil || p != domain.PositionDepartmentHead {
		t.Fatalf("got %s, %v", p, err)
	}
	if _, err := domain.ParsePosition("Head of Department"); !errors.Is(err, domain.ErrUnknownPosition) {
		t.Fatalf("labels are not enum names, got %v", err)
	}
}
