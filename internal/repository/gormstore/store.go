// Package gormstore implements the repositories on top of gorm, used with
// the MySQL driver.
package gormstore

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/spec-kit/org-service/internal/domain"
	"github.com/spec-kit/org-service/internal/repository"
)

const (
	mysqlDuplicateEntry  = 1062
	mysqlRowIsReferenced = 1451
	mysqlNoReferencedRow = 1452
)

// New returns gorm-backed repositories sharing db.
func New(db *gorm.DB) *repository.Store {
	return &repository.Store{
		Employees:    &employeeRepository{db: db},
		Departments:  &departmentRepository{db: db},
		Directorates: &directorateRepository{db: db},
	}
}

// AutoMigrate creates or updates the schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&directorateModel{}, &departmentModel{}, &employeeModel{})
}

// mapError translates gorm and driver errors. duplicate is returned for
// unique violations since each table carries a single unique key.
func mapError(err error, duplicate error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlDuplicateEntry:
			return fmt.Errorf("%w: %s", duplicate, myErr.Message)
		case mysqlRowIsReferenced, mysqlNoReferencedRow:
			return fmt.Errorf("%w: %s", domain.ErrReferenced, myErr.Message)
		}
	}
	return err
}

// findPage counts the rows matched by query and loads one page of them.
// query must return a fresh chain on every call.
func findPage[M any, T any](query func() *gorm.DB, page repository.PageRequest, fields map[string]string, convert func(M) T) (repository.Page[T], error) {
	page = page.Normalize()
	result := repository.Page[T]{Items: []T{}, Page: page.Page, Size: page.Size}

	order, err := repository.OrderClause(page.Sort, fields)
	if err != nil {
		return result, err
	}
	if err := query().Count(&result.Total).Error; err != nil {
		return result, err
	}
	if result.Total == 0 {
		return result, nil
	}

	var models []M
	if err := query().Order(order).Limit(page.Size).Offset(page.Offset()).Find(&models).Error; err != nil {
		return result, err
	}
	for _, m := range models {
		result.Items = append(result.Items, convert(m))
	}
	return result, nil
}
