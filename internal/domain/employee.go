package domain

import "time"

// Employee is the domain model for staff members; PersonalID doubles as login name.
type Employee struct {
	ID           int64
	Active       bool
	Name         string
	Surname      string
	PersonalID   string
	PasswordHash string
	Age          int
	Position     Position
	DepartmentID *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
