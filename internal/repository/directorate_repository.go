package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/org-service/internal/domain"
)

const directorateColumns = `id, active, name, description, director_id, created_at, updated_at`

type directorateRepository struct {
	pool *pgxpool.Pool
}

// NewDirectorateRepository builds the repository.
func NewDirectorateRepository(pool *pgxpool.Pool) DirectorateRepository {
	return &directorateRepository{pool: pool}
}

func scanDirectorate(row scanner) (domain.Directorate, error) {
	var d domain.Directorate
	err := row.Scan(&d.ID, &d.Active, &d.Name, &d.Description, &d.DirectorID, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

func (r *directorateRepository) Create(ctx context.Context, dir *domain.Directorate) error {
	const query = `
        INSERT INTO directorates (active, name, description, director_id)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		dir.Active,
		dir.Name,
		dir.Description,
		dir.DirectorID,
	).Scan(&dir.ID, &dir.CreatedAt, &dir.UpdatedAt)
	return mapPgError(err)
}

func (r *directorateRepository) Update(ctx context.Context, dir *domain.Directorate) error {
	const query = `
        UPDATE directorates SET active=$1, name=$2, description=$3, director_id=$4, updated_at=NOW()
        WHERE id=$5
        RETURNING created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		dir.Active,
		dir.Name,
		dir.Description,
		dir.DirectorID,
		dir.ID,
	).Scan(&dir.CreatedAt, &dir.UpdatedAt)
	return mapPgError(err)
}

func (r *directorateRepository) GetByID(ctx context.Context, id int64) (*domain.Directorate, error) {
	query := `SELECT ` + directorateColumns + ` FROM directorates WHERE id=$1`
	dir, err := scanDirectorate(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapPgError(err)
	}
	return &dir, nil
}

func (r *directorateRepository) GetByDirectorID(ctx context.Context, employeeID int64) (*domain.Directorate, error) {
	query := `SELECT ` + directorateColumns + ` FROM directorates WHERE director_id=$1`
	dir, err := scanDirectorate(r.pool.QueryRow(ctx, query, employeeID))
	if err != nil {
		return nil, mapPgError(err)
	}
	return &dir, nil
}

// Delete nulls the directorate reference of its departments and removes it, in one transaction.
func (r *directorateRepository) Delete(ctx context.Context, id int64) error {
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `UPDATE departments SET directorate_id=NULL, updated_at=NOW() WHERE directorate_id=$1`, id); err != nil {
			return err
		}
		cmd, err := tx.Exec(ctx, `DELETE FROM directorates WHERE id=$1`, id)
		if err != nil {
			return err
		}
		if cmd.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
	return mapPgError(err)
}

func (r *directorateRepository) List(ctx context.Context, filter ListFilter, page PageRequest) (Page[domain.Directorate], error) {
	where := ""
	if filter.ActiveOnly {
		where = "active = TRUE"
	}
	return queryPage(ctx, r.pool, "directorates", directorateColumns, where, nil, page, DirectorateSortFields, scanDirectorate)
}

func (r *directorateRepository) Search(ctx context.Context, term string, page PageRequest) (Page[domain.Directorate], error) {
	where := "LOWER(name) LIKE $1 OR LOWER(description) LIKE $1"
	return queryPage(ctx, r.pool, "directorates", directorateColumns, where, []any{SearchPattern(term)}, page, DirectorateSortFields, scanDirectorate)
}
