package domain

import (
	"fmt"
	"strings"
)

// Position enumerates the ranked organizational levels of an employee.
type Position string

const (
	PositionEmployee            Position = "EMPLOYEE"
	PositionDepartmentHead      Position = "DEPARTMENT_HEAD"
	PositionDirectorateDirector Position = "DIRECTORATE_DIRECTOR"
)

// positionRanks lists positions from lowest to highest privilege.
var positionRanks = []Position{
	PositionEmployee,
	PositionDepartmentHead,
	PositionDirectorateDirector,
}

var positionLabels = map[Position]string{
	PositionEmployee:            "Employee",
	PositionDepartmentHead:      "Head of Department",
	PositionDirectorateDirector: "Director of the Directorate",
}

// Positions returns all positions ordered from lowest to highest rank.
func Positions() []Position {
	return append([]Position(nil), positionRanks...)
}

// Rank returns the privilege rank of the position, or -1 when unknown.
func (p Position) Rank() int {
	for i, candidate := range positionRanks {
		if candidate == p {
			return i
		}
	}
	return -1
}

// Valid reports whether p is one of the known positions.
func (p Position) Valid() bool {
	return p.Rank() >= 0
}

// Label returns the human-readable label used in DTOs.
func (p Position) Label() string {
	return positionLabels[p]
}

// PositionFromLabel resolves a label case-insensitively.
func PositionFromLabel(label string) (Position, error) {
	for _, p := range positionRanks {
		if strings.EqualFold(positionLabels[p], label) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: no position with label %q", ErrUnknownPosition, label)
}

// ParsePosition resolves an enum name such as "DEPARTMENT_HEAD".
func ParsePosition(name string) (Position, error) {
	p := Position(strings.ToUpper(strings.TrimSpace(name)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPosition, name)
	}
	return p, nil
}
