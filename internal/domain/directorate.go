package domain

import "time"

// Directorate groups departments under at most one director.
type Directorate struct {
	ID          int64
	Active      bool
	Name        string
	Description string
	DirectorID  *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SetDirector assigns e as director. Only a DIRECTORATE_DIRECTOR is accepted;
// any other employee leaves the current director untouched and yields
// ErrInvalidDirectorAssignment.
func (d *Directorate) SetDirector(e *Employee) error {
	if e == nil || e.Position != PositionDirectorateDirector {
		return ErrInvalidDirectorAssignment
	}
	id := e.ID
	d.DirectorID = &id
	return nil
}

// ClearDirector removes the current director.
func (d *Directorate) ClearDirector() {
	d.DirectorID = nil
}
