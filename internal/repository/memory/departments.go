package memory

import (
	"context"
	"fmt"

	"github.com/spec-kit/org-service/internal/domain"
	"github.com/spec-kit/org-service/internal/repository"
)

type departmentRepository struct {
	s *Store
}

func departmentField(d domain.Department, column string) any {
	switch column {
	case "active":
		return d.Active
	case "name":
		return d.Name
	case "description":
		return d.Description
	case "directorate_id":
		return d.DirectorateID
	}
	return d.ID
}

func (r *departmentRepository) checkDirectorate(id *int64) error {
	if id == nil {
		return nil
	}
	if _, ok := r.s.directorates[*id]; !ok {
		return fmt.Errorf("%w: directorate %d", domain.ErrReferenced, *id)
	}
	return nil
}

func (r *departmentRepository) Create(_ context.Context, dept *domain.Department) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.checkDirectorate(dept.DirectorateID); err != nil {
		return err
	}
	now := r.s.now()
	dept.ID = r.s.id()
	dept.CreatedAt, dept.UpdatedAt = now, now
	stored := *dept
	stored.DirectorateID = cloneID(dept.DirectorateID)
	r.s.departments[dept.ID] = stored
	return nil
}

func (r *departmentRepository) Update(_ context.Context, dept *domain.Department) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.departments[dept.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if err := r.checkDirectorate(dept.DirectorateID); err != nil {
		return err
	}
	dept.CreatedAt = existing.CreatedAt
	dept.UpdatedAt = r.s.now()
	stored := *dept
	stored.DirectorateID = cloneID(dept.DirectorateID)
	r.s.departments[dept.ID] = stored
	return nil
}

func (r *departmentRepository) GetByID(_ context.Context, id int64) (*domain.Department, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	d, ok := r.s.departments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	d.DirectorateID = cloneID(d.DirectorateID)
	return &d, nil
}

func (r *departmentRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.departments[id]; !ok {
		return domain.ErrNotFound
	}
	for _, e := range r.s.employees {
		if e.DepartmentID != nil && *e.DepartmentID == id {
			return fmt.Errorf("%w: department %d has employees", domain.ErrReferenced, id)
		}
	}
	delete(r.s.departments, id)
	return nil
}

func (r *departmentRepository) List(_ context.Context, filter repository.ListFilter, page repository.PageRequest) (repository.Page[domain.Department], error) {
	return r.collect(page, func(d domain.Department) bool {
		return !filter.ActiveOnly || d.Active
	})
}

func (r *departmentRepository) Search(_ context.Context, term string, page repository.PageRequest) (repository.Page[domain.Department], error) {
	return r.collect(page, func(d domain.Department) bool {
		return containsFold(d.Name, term) || containsFold(d.Description, term)
	})
}

func (r *departmentRepository) collect(page repository.PageRequest, keep func(domain.Department) bool) (repository.Page[domain.Department], error) {
	r.s.mu.RLock()
	items := make([]domain.Department, 0, len(r.s.departments))
	for _, d := range r.s.departments {
		if keep(d) {
			d.DirectorateID = cloneID(d.DirectorateID)
			items = append(items, d)
		}
	}
	r.s.mu.RUnlock()

	return paginate(items, page, repository.DepartmentSortFields, departmentField)
}
