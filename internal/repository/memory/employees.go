package memory

import (
	"context"
	"fmt"

	"github.com/spec-kit/org-service/internal/domain"
	"github.com/spec-kit/org-service/internal/repository"
)

type employeeRepository struct {
	s *Store
}

func employeeField(e domain.Employee, column string) any {
	switch column {
	case "active":
		return e.Active
	case "name":
		return e.Name
	case "surname":
		return e.Surname
	case "personal_id":
		return e.PersonalID
	case "age":
		return e.Age
	case "position":
		return string(e.Position)
	case "department_id":
		return e.DepartmentID
	}
	return e.ID
}

func (r *employeeRepository) personalIDTaken(personalID string, exceptID int64) bool {
	for id, e := range r.s.employees {
		if id != exceptID && e.PersonalID == personalID {
			return true
		}
	}
	return false
}

func (r *employeeRepository) Create(_ context.Context, e *domain.Employee) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.personalIDTaken(e.PersonalID, 0) {
		return fmt.Errorf("%w: %s", domain.ErrDuplicatePersonalID, e.PersonalID)
	}
	if e.DepartmentID != nil {
		if _, ok := r.s.departments[*e.DepartmentID]; !ok {
			return fmt.Errorf("%w: department %d", domain.ErrReferenced, *e.DepartmentID)
		}
	}
	now := r.s.now()
	e.ID = r.s.id()
	e.CreatedAt, e.UpdatedAt = now, now
	stored := *e
	stored.DepartmentID = cloneID(e.DepartmentID)
	r.s.employees[e.ID] = stored
	return nil
}

func (r *employeeRepository) Update(_ context.Context, e *domain.Employee) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.employees[e.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if r.personalIDTaken(e.PersonalID, e.ID) {
		return fmt.Errorf("%w: %s", domain.ErrDuplicatePersonalID, e.PersonalID)
	}
	if e.DepartmentID != nil {
		if _, ok := r.s.departments[*e.DepartmentID]; !ok {
			return fmt.Errorf("%w: department %d", domain.ErrReferenced, *e.DepartmentID)
		}
	}
	e.CreatedAt = existing.CreatedAt
	e.UpdatedAt = r.s.now()
	stored := *e
	stored.DepartmentID = cloneID(e.DepartmentID)
	r.s.employees[e.ID] = stored
	return nil
}

func (r *employeeRepository) GetByID(_ context.Context, id int64) (*domain.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.employees[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	e.DepartmentID = cloneID(e.DepartmentID)
	return &e, nil
}

func (r *employeeRepository) GetByPersonalID(_ context.Context, personalID string) (*domain.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, e := range r.s.employees {
		if e.PersonalID == personalID {
			e.DepartmentID = cloneID(e.DepartmentID)
			return &e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *employeeRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.employees[id]; !ok {
		return domain.ErrNotFound
	}
	for _, d := range r.s.directorates {
		if d.DirectorID != nil && *d.DirectorID == id {
			return fmt.Errorf("%w: employee %d directs directorate %d", domain.ErrReferenced, id, d.ID)
		}
	}
	delete(r.s.employees, id)
	return nil
}

func (r *employeeRepository) List(_ context.Context, filter repository.ListFilter, page repository.PageRequest) (repository.Page[domain.Employee], error) {
	return r.collect(page, func(e domain.Employee) bool {
		return !filter.ActiveOnly || e.Active
	})
}

func (r *employeeRepository) Search(_ context.Context, term string, page repository.PageRequest) (repository.Page[domain.Employee], error) {
	return r.collect(page, func(e domain.Employee) bool {
		return containsFold(e.Name, term) || containsFold(e.Surname, term)
	})
}

func (r *employeeRepository) collect(page repository.PageRequest, keep func(domain.Employee) bool) (repository.Page[domain.Employee], error) {
	r.s.mu.RLock()
	items := make([]domain.Employee, 0, len(r.s.employees))
	for _, e := range r.s.employees {
		if keep(e) {
			e.DepartmentID = cloneID(e.DepartmentID)
			items = append(items, e)
		}
	}
	r.s.mu.RUnlock()

	return paginate(items, page, repository.EmployeeSortFields, employeeField)
}
