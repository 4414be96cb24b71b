package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/org-service/internal/domain"
)

const employeeColumns = `id, active, name, surname, personal_id, password_hash, age, position, department_id, created_at, updated_at`

type employeeRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository returns a Postgres-backed implementation.
func NewEmployeeRepository(pool *pgxpool.Pool) EmployeeRepository {
	return &employeeRepository{pool: pool}
}

func scanEmployee(row scanner) (domain.Employee, error) {
	var e domain.Employee
	err := row.Scan(
		&e.ID,
		&e.Active,
		&e.Name,
		&e.Surname,
		&e.PersonalID,
		&e.PasswordHash,
		&e.Age,
		&e.Position,
		&e.DepartmentID,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

func (r *employeeRepository) Create(ctx context.Context, e *domain.Employee) error {
	const query = `
        INSERT INTO employees (active, name, surname, personal_id, password_hash, age, position, department_id)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		e.Active,
		e.Name,
		e.Surname,
		e.PersonalID,
		e.PasswordHash,
		e.Age,
		e.Position,
		e.DepartmentID,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	return mapPgError(err)
}

func (r *employeeRepository) Update(ctx context.Context, e *domain.Employee) error {
	const query = `
        UPDATE employees
        SET active=$1, name=$2, surname=$3, personal_id=$4, password_hash=$5, age=$6, position=$7, department_id=$8, updated_at=NOW()
        WHERE id=$9
        RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		e.Active,
		e.Name,
		e.Surname,
		e.PersonalID,
		e.PasswordHash,
		e.Age,
		e.Position,
		e.DepartmentID,
		e.ID,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
	return mapPgError(err)
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id=$1`
	e, err := scanEmployee(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapPgError(err)
	}
	return &e, nil
}

func (r *employeeRepository) GetByPersonalID(ctx context.Context, personalID string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE personal_id=$1`
	e, err := scanEmployee(r.pool.QueryRow(ctx, query, personalID))
	if err != nil {
		return nil, mapPgError(err)
	}
	return &e, nil
}

func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM employees WHERE id=$1`, id)
	if err != nil {
		return mapPgError(err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *employeeRepository) List(ctx context.Context, filter ListFilter, page PageRequest) (Page[domain.Employee], error) {
	where := ""
	var args []any
	if filter.ActiveOnly {
		where = "active = TRUE"
	}
	return queryPage(ctx, r.pool, "employees", employeeColumns, where, args, page, EmployeeSortFields, scanEmployee)
}

func (r *employeeRepository) Search(ctx context.Context, term string, page PageRequest) (Page[domain.Employee], error) {
	where := "LOWER(name) LIKE $1 OR LOWER(surname) LIKE $1"
	args := []any{SearchPattern(term)}
	return queryPage(ctx, r.pool, "employees", employeeColumns, where, args, page, EmployeeSortFields, scanEmployee)
}
