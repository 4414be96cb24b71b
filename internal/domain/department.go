package domain

import "time"

// Department represents an organizational unit, optionally owned by a directorate.
type Department struct {
	ID            int64
	Active        bool
	Name          string
	Description   string
	DirectorateID *int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
