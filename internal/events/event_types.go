package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/org-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEmployeeRegistered         EventType = "employee_registered"
	EventEmployeeAuthenticated      EventType = "employee_authenticated"
	EventEmployeeStatusChanged      EventType = "employee_status_changed"
	EventDirectorateDeleted         EventType = "directorate_deleted"
	EventDirectorAssignmentRejected EventType = "director_assignment_rejected"
	EventDirectorUnassigned         EventType = "director_unassigned"
)

// AllEventTypes lists every audited event.
func AllEventTypes() []EventType {
	return []EventType{
		EventEmployeeRegistered,
		EventEmployeeAuthenticated,
		EventEmployeeStatusChanged,
		EventDirectorateDeleted,
		EventDirectorAssignmentRejected,
		EventDirectorUnassigned,
	}
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Subject   string      `json:"subject"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// NewEvent stamps an event with a fresh id and the current time.
func NewEvent(eventType EventType, subject string, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Subject:   subject,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// EmployeeRegisteredPayload payload.
type EmployeeRegisteredPayload struct {
	EmployeeID int64           `json:"employee_id"`
	Position   domain.Position `json:"position"`
}

// EmployeeAuthenticatedPayload payload.
type EmployeeAuthenticatedPayload struct {
	EmployeeID int64    `json:"employee_id"`
	Roles      []string `json:"roles"`
}

// EmployeeStatusChangedPayload payload.
type EmployeeStatusChangedPayload struct {
	EmployeeID int64 `json:"employee_id"`
	OldActive  bool  `json:"old_active"`
	NewActive  bool  `json:"new_active"`
}

// DirectorateDeletedPayload payload.
type DirectorateDeletedPayload struct {
	DirectorateID int64  `json:"directorate_id"`
	Name          string `json:"name"`
}

// DirectorAssignmentRejectedPayload payload.
type DirectorAssignmentRejectedPayload struct {
	DirectorateID int64           `json:"directorate_id"`
	EmployeeID    int64           `json:"employee_id"`
	Position      domain.Position `json:"position"`
}

// DirectorUnassignedPayload is published when a director loses the
// directorate director position and is removed from their directorate.
type DirectorUnassignedPayload struct {
	DirectorateID int64           `json:"directorate_id"`
	EmployeeID    int64           `json:"employee_id"`
	Position      domain.Position `json:"position"`
}
