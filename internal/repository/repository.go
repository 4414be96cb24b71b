package repository

import (
	"context"

	"github.com/spec-kit/org-service/internal/domain"
)

// EmployeeRepository persists employees and doubles as the credential store.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) error
	Update(ctx context.Context, employee *domain.Employee) error
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	GetByPersonalID(ctx context.Context, personalID string) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter ListFilter, page PageRequest) (Page[domain.Employee], error)
	Search(ctx context.Context, term string, page PageRequest) (Page[domain.Employee], error)
}

// DepartmentRepository persists departments.
type DepartmentRepository interface {
	Create(ctx context.Context, dept *domain.Department) error
	Update(ctx context.Context, dept *domain.Department) error
	GetByID(ctx context.Context, id int64) (*domain.Department, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter ListFilter, page PageRequest) (Page[domain.Department], error)
	Search(ctx context.Context, term string, page PageRequest) (Page[domain.Department], error)
}

// DirectorateRepository persists directorates. Delete detaches the
// directorate's departments instead of cascading.
type DirectorateRepository interface {
	Create(ctx context.Context, dir *domain.Directorate) error
	Update(ctx context.Context, dir *domain.Directorate) error
	GetByID(ctx context.Context, id int64) (*domain.Directorate, error)
	GetByDirectorID(ctx context.Context, employeeID int64) (*domain.Directorate, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter ListFilter, page PageRequest) (Page[domain.Directorate], error)
	Search(ctx context.Context, term string, page PageRequest) (Page[domain.Directorate], error)
}

// Store bundles the repositories of one backend.
type Store struct {
	Employees    EmployeeRepository
	Departments  DepartmentRepository
	Directorates DirectorateRepository
}
