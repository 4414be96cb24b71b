package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/org-service/internal/domain"
	"github.com/spec-kit/org-service/internal/events"
	"github.com/spec-kit/org-service/internal/repository"
)

// DirectorateInput holds the editable directorate fields.
type DirectorateInput struct {
	Active      bool
	Name        string
	Description string
	DirectorID  *int64
}

// DirectorateService manages directorates and their director assignment.
type DirectorateService struct {
	Dependencies
	directorates repository.DirectorateRepository
	employees    repository.EmployeeRepository
}

// NewDirectorateService builds the service.
func NewDirectorateService(store *repository.Store, deps Dependencies) *DirectorateService {
	return &DirectorateService{
		Dependencies: deps,
		directorates: store.Directorates,
		employees:    store.Employees,
	}
}

func (s *DirectorateService) List(ctx context.Context, page repository.PageRequest, activeOnly bool) (repository.Page[domain.Directorate], error) {
	return s.directorates.List(ctx, repository.ListFilter{ActiveOnly: activeOnly}, page)
}

// Search matches term case-insensitively against name or description.
func (s *DirectorateService) Search(ctx context.Context, page repository.PageRequest, term string) (repository.Page[domain.Directorate], error) {
	return s.directorates.Search(ctx, term, page)
}

func (s *DirectorateService) Get(ctx context.Context, id int64) (*domain.Directorate, error) {
	return s.directorates.GetByID(ctx, id)
}

// Create stores a directorate. A director who already directs another
// directorate is a conflict.
func (s *DirectorateService) Create(ctx context.Context, in DirectorateInput) (*domain.Directorate, error) {
	if in.DirectorID != nil {
		existing, err := s.directorates.GetByDirectorID(ctx, *in.DirectorID)
		if err == nil {
			return nil, fmt.Errorf("%w: employee %d directs directorate %d", domain.ErrDirectorAlreadyAssigned, *in.DirectorID, existing.ID)
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}

	dir := &domain.Directorate{
		Active:      in.Active,
		Name:        in.Name,
		Description: in.Description,
	}
	rejected, err := s.assignDirector(ctx, dir, in.DirectorID)
	if err != nil {
		return nil, err
	}
	if err := s.directorates.Create(ctx, dir); err != nil {
		return nil, err
	}
	if rejected != nil {
		s.reportRejected(ctx, dir, rejected)
	}
	return dir, nil
}

// Update replaces the editable fields and re-resolves the director.
func (s *DirectorateService) Update(ctx context.Context, id int64, in DirectorateInput) (*domain.Directorate, error) {
	dir, err := s.directorates.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dir.Active = in.Active
	dir.Name = in.Name
	dir.Description = in.Description
	dir.ClearDirector()

	rejected, err := s.assignDirector(ctx, dir, in.DirectorID)
	if err != nil {
		return nil, err
	}
	if err := s.directorates.Update(ctx, dir); err != nil {
		return nil, err
	}
	if rejected != nil {
		s.reportRejected(ctx, dir, rejected)
	}
	return dir, nil
}

func (s *DirectorateService) SetStatus(ctx context.Context, id int64, active bool) (*domain.Directorate, error) {
	dir, err := s.directorates.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dir.Active = active
	if err := s.directorates.Update(ctx, dir); err != nil {
		return nil, err
	}
	return dir, nil
}

// Delete removes the directorate and detaches its departments.
func (s *DirectorateService) Delete(ctx context.Context, id int64) error {
	dir, err := s.directorates.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.directorates.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, events.NewEvent(events.EventDirectorateDeleted, fmt.Sprint(id), events.DirectorateDeletedPayload{
		DirectorateID: id,
		Name:          dir.Name,
	}))
	return nil
}

// assignDirector resolves employeeID and applies it through SetDirector. An
// unknown employee leaves the directorate without a director. The returned
// employee is set when the assignment was refused.
func (s *DirectorateService) assignDirector(ctx context.Context, dir *domain.Directorate, employeeID *int64) (*domain.Employee, error) {
	if employeeID == nil {
		return nil, nil
	}
	employee, err := s.employees.GetByID(ctx, *employeeID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := dir.SetDirector(employee); err != nil {
		return employee, nil
	}
	return nil, nil
}

func (s *DirectorateService) reportRejected(ctx context.Context, dir *domain.Directorate, employee *domain.Employee) {
	s.logger().Warn("director assignment rejected",
		zap.Int64("directorate_id", dir.ID),
		zap.Int64("employee_id", employee.ID),
		zap.String("position", string(employee.Position)),
	)
	s.publish(ctx, events.NewEvent(events.EventDirectorAssignmentRejected, employee.PersonalID, events.DirectorAssignmentRejectedPayload{
		DirectorateID: dir.ID,
		EmployeeID:    employee.ID,
		Position:      employee.Position,
	}))
}
