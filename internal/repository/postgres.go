package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/org-service/internal/domain"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"

	constraintPersonalID = "employees_personal_id_key"
	constraintDirector   = "directorates_director_id_key"
)

// NewPostgresStore returns pgx-backed repositories sharing one pool.
func NewPostgresStore(pool *pgxpool.Pool) *Store {
	return &Store{
		Employees:    NewEmployeeRepository(pool),
		Departments:  NewDepartmentRepository(pool),
		Directorates: NewDirectorateRepository(pool),
	}
}

type scanner interface {
	Scan(dest ...any) error
}

// mapPgError translates driver errors into domain errors.
func mapPgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			switch pgErr.ConstraintName {
			case constraintPersonalID:
				return fmt.Errorf("%w: %s", domain.ErrDuplicatePersonalID, pgErr.Detail)
			case constraintDirector:
				return fmt.Errorf("%w: %s", domain.ErrDirectorAlreadyAssigned, pgErr.Detail)
			}
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", domain.ErrReferenced, pgErr.Detail)
		}
	}
	return err
}

// queryPage counts the matching rows and fetches one page of them.
func queryPage[T any](
	ctx context.Context,
	pool *pgxpool.Pool,
	table, columns, where string,
	args []any,
	page PageRequest,
	sortFields map[string]string,
	scan func(scanner) (T, error),
) (Page[T], error) {
	page = page.Normalize()
	result := Page[T]{Items: []T{}, Page: page.Page, Size: page.Size}

	order, err := OrderClause(page.Sort, sortFields)
	if err != nil {
		return result, err
	}

	countQuery := "SELECT COUNT(*) FROM " + table
	selectQuery := "SELECT " + columns + " FROM " + table
	if where != "" {
		countQuery += " WHERE " + where
		selectQuery += " WHERE " + where
	}
	if err := pool.QueryRow(ctx, countQuery, args...).Scan(&result.Total); err != nil {
		return result, err
	}
	if result.Total == 0 {
		return result, nil
	}

	selectQuery += fmt.Sprintf(" ORDER BY %s LIMIT %d OFFSET %d", order, page.Size, page.Offset())
	rows, err := pool.Query(ctx, selectQuery, args...)
	if err != nil {
		return result, err
	}
	defer rows.Close()

	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return result, err
		}
		result.Items = append(result.Items, item)
	}
	return result, rows.Err()
}
