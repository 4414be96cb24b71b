package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/org-service/internal/auth"
	"github.com/spec-kit/org-service/internal/domain"
	"github.com/spec-kit/org-service/internal/events"
	"github.com/spec-kit/org-service/internal/repository"
)

// EmployeeInput holds the editable employee fields.
type EmployeeInput struct {
	Active       bool
	Name         string
	Surname      string
	PersonalID   string
	Age          int
	Position     domain.Position
	DepartmentID *int64
}

// CreateEmployeeInput adds the initial password.
type CreateEmployeeInput struct {
	EmployeeInput
	Password string
}

// EmployeeService manages employee records.
type EmployeeService struct {
	Dependencies
	employees    repository.EmployeeRepository
	departments  repository.DepartmentRepository
	directorates repository.DirectorateRepository
	hasher       auth.PasswordHasher
}

// NewEmployeeService builds the service.
func NewEmployeeService(store *repository.Store, hasher auth.PasswordHasher, deps Dependencies) *EmployeeService {
	return &EmployeeService{
		Dependencies: deps,
		employees:    store.Employees,
		departments:  store.Departments,
		directorates: store.Directorates,
		hasher:       hasher,
	}
}

func (s *EmployeeService) List(ctx context.Context, page repository.PageRequest, activeOnly bool) (repository.Page[domain.Employee], error) {
	return s.employees.List(ctx, repository.ListFilter{ActiveOnly: activeOnly}, page)
}

// Search matches term case-insensitively against name or surname.
func (s *EmployeeService) Search(ctx context.Context, page repository.PageRequest, term string) (repository.Page[domain.Employee], error) {
	return s.employees.Search(ctx, term, page)
}

func (s *EmployeeService) Get(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.employees.GetByID(ctx, id)
}

// Create stores a new employee. The personal id must be unused.
func (s *EmployeeService) Create(ctx context.Context, in CreateEmployeeInput) (*domain.Employee, error) {
	if _, err := s.employees.GetByPersonalID(ctx, in.PersonalID); err == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicatePersonalID, in.PersonalID)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	departmentID, err := resolveDepartment(ctx, s.departments, in.DepartmentID)
	if err != nil {
		return nil, err
	}

	employee := &domain.Employee{
		Active:       in.Active,
		Name:         in.Name,
		Surname:      in.Surname,
		PersonalID:   in.PersonalID,
		PasswordHash: hash,
		Age:          in.Age,
		Position:     in.Position,
		DepartmentID: departmentID,
	}
	if err := s.employees.Create(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// Update replaces the editable fields, keeping the stored password hash. An
// employee moved off the directorate director position stops directing their
// directorate.
func (s *EmployeeService) Update(ctx context.Context, id int64, in EmployeeInput) (*domain.Employee, error) {
	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	departmentID, err := resolveDepartment(ctx, s.departments, in.DepartmentID)
	if err != nil {
		return nil, err
	}

	employee.Active = in.Active
	employee.Name = in.Name
	employee.Surname = in.Surname
	employee.PersonalID = in.PersonalID
	employee.Age = in.Age
	employee.Position = in.Position
	employee.DepartmentID = departmentID
	if err := s.employees.Update(ctx, employee); err != nil {
		return nil, err
	}
	if employee.Position != domain.PositionDirectorateDirector {
		if err := s.releaseDirectorate(ctx, employee); err != nil {
			return nil, err
		}
	}
	return employee, nil
}

func (s *EmployeeService) releaseDirectorate(ctx context.Context, employee *domain.Employee) error {
	dir, err := s.directorates.GetByDirectorID(ctx, employee.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	dir.ClearDirector()
	if err := s.directorates.Update(ctx, dir); err != nil {
		return err
	}

	s.logger().Warn("director unassigned after position change",
		zap.Int64("directorate_id", dir.ID),
		zap.Int64("employee_id", employee.ID),
		zap.String("position", string(employee.Position)),
	)
	s.publish(ctx, events.NewEvent(events.EventDirectorUnassigned, employee.PersonalID, events.DirectorUnassignedPayload{
		DirectorateID: dir.ID,
		EmployeeID:    employee.ID,
		Position:      employee.Position,
	}))
	return nil
}

func (s *EmployeeService) UpdatePassword(ctx context.Context, id int64, password string) (*domain.Employee, error) {
	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	employee.PasswordHash = hash
	if err := s.employees.Update(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// SetStatus activates or deactivates an employee. Inactive employees can no
// longer authenticate.
func (s *EmployeeService) SetStatus(ctx context.Context, id int64, active bool) (*domain.Employee, error) {
	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	old := employee.Active
	employee.Active = active
	if err := s.employees.Update(ctx, employee); err != nil {
		return nil, err
	}
	if old != active {
		s.publish(ctx, events.NewEvent(events.EventEmployeeStatusChanged, employee.PersonalID, events.EmployeeStatusChangedPayload{
			EmployeeID: employee.ID,
			OldActive:  old,
			NewActive:  active,
		}))
	}
	return employee, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	return s.employees.Delete(ctx, id)
}

// resolveDepartment returns id when the department exists and nil otherwise.
func resolveDepartment(ctx context.Context, departments repository.DepartmentRepository, id *int64) (*int64, error) {
	if id == nil {
		return nil, nil
	}
	dept, err := departments.GetByID(ctx, *id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dept.ID, nil
}
