package service

import (
	"context"
	"errors"

	"github.com/spec-kit/org-service/internal/domain"
	"github.com/spec-kit/org-service/internal/repository"
)

// DepartmentInput holds the editable department fields.
type DepartmentInput struct {
	Active        bool
	Name          string
	Description   string
	DirectorateID *int64
}

// DepartmentService manages departments.
type DepartmentService struct {
	Dependencies
	departments  repository.DepartmentRepository
	directorates repository.DirectorateRepository
}

// NewDepartmentService builds the service.
func NewDepartmentService(store *repository.Store, deps Dependencies) *DepartmentService {
	return &DepartmentService{
		Dependencies: deps,
		departments:  store.Departments,
		directorates: store.Directorates,
	}
}

func (s *DepartmentService) List(ctx context.Context, page repository.PageRequest, activeOnly bool) (repository.Page[domain.Department], error) {
	return s.departments.List(ctx, repository.ListFilter{ActiveOnly: activeOnly}, page)
}

// Search matches term case-insensitively against name or description.
func (s *DepartmentService) Search(ctx context.Context, page repository.PageRequest, term string) (repository.Page[domain.Department], error) {
	return s.departments.Search(ctx, term, page)
}

func (s *DepartmentService) Get(ctx context.Context, id int64) (*domain.Department, error) {
	return s.departments.GetByID(ctx, id)
}

func (s *DepartmentService) Create(ctx context.Context, in DepartmentInput) (*domain.Department, error) {
	directorateID, err := s.resolveDirectorate(ctx, in.DirectorateID)
	if err != nil {
		return nil, err
	}
	dept := &domain.Department{
		Active:        in.Active,
		Name:          in.Name,
		Description:   in.Description,
		DirectorateID: directorateID,
	}
	if err := s.departments.Create(ctx, dept); err != nil {
		return nil, err
	}
	return dept, nil
}

// Update replaces the editable fields. An unknown directorate clears the link.
func (s *DepartmentService) Update(ctx context.Context, id int64, in DepartmentInput) (*domain.Department, error) {
	dept, err := s.departments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	directorateID, err := s.resolveDirectorate(ctx, in.DirectorateID)
	if err != nil {
		return nil, err
	}
	dept.Active = in.Active
	dept.Name = in.Name
	dept.Description = in.Description
	dept.DirectorateID = directorateID
	if err := s.departments.Update(ctx, dept); err != nil {
		return nil, err
	}
	return dept, nil
}

func (s *DepartmentService) SetStatus(ctx context.Context, id int64, active bool) (*domain.Department, error) {
	dept, err := s.departments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dept.Active = active
	if err := s.departments.Update(ctx, dept); err != nil {
		return nil, err
	}
	return dept, nil
}

func (s *DepartmentService) Delete(ctx context.Context, id int64) error {
	return s.departments.Delete(ctx, id)
}

func (s *DepartmentService) resolveDirectorate(ctx context.Context, id *int64) (*int64, error) {
	if id == nil {
		return nil, nil
	}
	dir, err := s.directorates.GetByID(ctx, *id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dir.ID, nil
}
