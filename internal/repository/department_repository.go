package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/org-service/internal/domain"
)

const departmentColumns = `id, active, name, description, directorate_id, created_at, updated_at`

type departmentRepository struct {
	pool *pgxpool.Pool
}

// NewDepartmentRepository builds the repository.
func NewDepartmentRepository(pool *pgxpool.Pool) DepartmentRepository {
	return &departmentRepository{pool: pool}
}

func scanDepartment(row scanner) (domain.Department, error) {
	var d domain.Department
	err := row.Scan(&d.ID, &d.Active, &d.Name, &d.Description, &d.DirectorateID, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

func (r *departmentRepository) Create(ctx context.Context, dept *domain.Department) error {
	const query = `
        INSERT INTO departments (active, name, description, directorate_id)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		dept.Active,
		dept.Name,
		dept.Description,
		dept.DirectorateID,
	).Scan(&dept.ID, &dept.CreatedAt, &dept.UpdatedAt)
	return mapPgError(err)
}

func (r *departmentRepository) Update(ctx context.Context, dept *domain.Department) error {
	const query = `
        UPDATE departments SET active=$1, name=$2, description=$3, directorate_id=$4, updated_at=NOW()
        WHERE id=$5
        RETURNING created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		dept.Active,
		dept.Name,
		dept.Description,
		dept.DirectorateID,
		dept.ID,
	).Scan(&dept.CreatedAt, &dept.UpdatedAt)
	return mapPgError(err)
}

func (r *departmentRepository) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	query := `SELECT ` + departmentColumns + ` FROM departments WHERE id=$1`
	dept, err := scanDepartment(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapPgError(err)
	}
	return &dept, nil
}

func (r *departmentRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM departments WHERE id=$1`, id)
	if err != nil {
		return mapPgError(err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *departmentRepository) List(ctx context.Context, filter ListFilter, page PageRequest) (Page[domain.Department], error) {
	where := ""
	if filter.ActiveOnly {
		where = "active = TRUE"
	}
	return queryPage(ctx, r.pool, "departments", departmentColumns, where, nil, page, DepartmentSortFields, scanDepartment)
}

func (r *departmentRepository) Search(ctx context.Context, term string, page PageRequest) (Page[domain.Department], error) {
	where := "LOWER(name) LIKE $1 OR LOWER(description) LIKE $1"
	return queryPage(ctx, r.pool, "departments", departmentColumns, where, []any{SearchPattern(term)}, page, DepartmentSortFields, scanDepartment)
}
