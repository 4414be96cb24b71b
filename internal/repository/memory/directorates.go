package memory

import (
	"context"
	"fmt"

	"github.com/spec-kit/org-service/internal/domain"
	"github.com/spec-kit/org-service/internal/repository"
)

type directorateRepository struct {
	s *Store
}

func directorateField(d domain.Directorate, column string) any {
	switch column {
	case "active":
		return d.Active
	case "name":
		return d.Name
	case "description":
		return d.Description
	case "director_id":
		return d.DirectorID
	}
	return d.ID
}

func (r *directorateRepository) checkDirector(dir *domain.Directorate) error {
	if dir.DirectorID == nil {
		return nil
	}
	if _, ok := r.s.employees[*dir.DirectorID]; !ok {
		return fmt.Errorf("%w: employee %d", domain.ErrReferenced, *dir.DirectorID)
	}
	for id, other := range r.s.directorates {
		if id != dir.ID && other.DirectorID != nil && *other.DirectorID == *dir.DirectorID {
			return fmt.Errorf("%w: employee %d", domain.ErrDirectorAlreadyAssigned, *dir.DirectorID)
		}
	}
	return nil
}

func (r *directorateRepository) Create(_ context.Context, dir *domain.Directorate) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	dir.ID = 0
	if err := r.checkDirector(dir); err != nil {
		return err
	}
	now := r.s.now()
	dir.ID = r.s.id()
	dir.CreatedAt, dir.UpdatedAt = now, now
	stored := *dir
	stored.DirectorID = cloneID(dir.DirectorID)
	r.s.directorates[dir.ID] = stored
	return nil
}

func (r *directorateRepository) Update(_ context.Context, dir *domain.Directorate) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.directorates[dir.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if err := r.checkDirector(dir); err != nil {
		return err
	}
	dir.CreatedAt = existing.CreatedAt
	dir.UpdatedAt = r.s.now()
	stored := *dir
	stored.DirectorID = cloneID(dir.DirectorID)
	r.s.directorates[dir.ID] = stored
	return nil
}

func (r *directorateRepository) GetByID(_ context.Context, id int64) (*domain.Directorate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	d, ok := r.s.directorates[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	d.DirectorID = cloneID(d.DirectorID)
	return &d, nil
}

func (r *directorateRepository) GetByDirectorID(_ context.Context, employeeID int64) (*domain.Directorate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, d := range r.s.directorates {
		if d.DirectorID != nil && *d.DirectorID == employeeID {
			d.DirectorID = cloneID(d.DirectorID)
			return &d, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *directorateRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.directorates[id]; !ok {
		return domain.ErrNotFound
	}
	now := r.s.now()
	for deptID, dept := range r.s.departments {
		if dept.DirectorateID != nil && *dept.DirectorateID == id {
			dept.DirectorateID = nil
			dept.UpdatedAt = now
			r.s.departments[deptID] = dept
		}
	}
	delete(r.s.directorates, id)
	return nil
}

func (r *directorateRepository) List(_ context.Context, filter repository.ListFilter, page repository.PageRequest) (repository.Page[domain.Directorate], error) {
	return r.collect(page, func(d domain.Directorate) bool {
		return !filter.ActiveOnly || d.Active
	})
}

func (r *directorateRepository) Search(_ context.Context, term string, page repository.PageRequest) (repository.Page[domain.Directorate], error) {
	return r.collect(page, func(d domain.Directorate) bool {
		return containsFold(d.Name, term) || containsFold(d.Description, term)
	})
}

func (r *directorateRepository) collect(page repository.PageRequest, keep func(domain.Directorate) bool) (repository.Page[domain.Directorate], error) {
	r.s.mu.RLock()
	items := make([]domain.Directorate, 0, len(r.s.directorates))
	for _, d := range r.s.directorates {
		if keep(d) {
			d.DirectorID = cloneID(d.DirectorID)
			items = append(items, d)
		}
	}
	r.s.mu.RUnlock()

	return paginate(items, page, repository.DirectorateSortFields, directorateField)
}
