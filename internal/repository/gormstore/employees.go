package gormstore

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/spec-kit/org-service/internal/domain"
	"github.com/spec-kit/org-service/internal/repository"
)

type employeeRepository struct {
	db *gorm.DB
}

func checkDepartment(tx *gorm.DB, id *int64) error {
	if id == nil {
		return nil
	}
	var count int64
	if err := tx.Model(&departmentModel{}).Where("id = ?", *id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%w: department %d", domain.ErrReferenced, *id)
	}
	return nil
}

func (r *employeeRepository) Create(ctx context.Context, e *domain.Employee) error {
	m := employeeFromDomain(e)
	m.ID = 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkDepartment(tx, m.DepartmentID); err != nil {
			return err
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		return mapError(err, domain.ErrDuplicatePersonalID)
	}
	e.ID, e.CreatedAt, e.UpdatedAt = m.ID, m.CreatedAt, m.UpdatedAt
	return nil
}

func (r *employeeRepository) Update(ctx context.Context, e *domain.Employee) error {
	m := employeeFromDomain(e)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing employeeModel
		if err := tx.First(&existing, e.ID).Error; err != nil {
			return err
		}
		if err := checkDepartment(tx, m.DepartmentID); err != nil {
			return err
		}
		m.CreatedAt = existing.CreatedAt
		return tx.Select("*").Omit("id", "created_at").Updates(&m).Error
	})
	if err != nil {
		return mapError(err, domain.ErrDuplicatePersonalID)
	}
	e.CreatedAt, e.UpdatedAt = m.CreatedAt, m.UpdatedAt
	return nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	var m employeeModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, mapError(err, domain.ErrDuplicatePersonalID)
	}
	e := m.toDomain()
	return &e, nil
}

func (r *employeeRepository) GetByPersonalID(ctx context.Context, personalID string) (*domain.Employee, error) {
	var m employeeModel
	if err := r.db.WithContext(ctx).Where("personal_id = ?", personalID).First(&m).Error; err != nil {
		return nil, mapError(err, domain.ErrDuplicatePersonalID)
	}
	e := m.toDomain()
	return &e, nil
}

func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing employeeModel
		if err := tx.First(&existing, id).Error; err != nil {
			return err
		}
		var directs int64
		if err := tx.Model(&directorateModel{}).Where("director_id = ?", id).Count(&directs).Error; err != nil {
			return err
		}
		if directs > 0 {
			return fmt.Errorf("%w: employee %d directs a directorate", domain.ErrReferenced, id)
		}
		return tx.Delete(&employeeModel{}, id).Error
	})
	return mapError(err, domain.ErrDuplicatePersonalID)
}

func (r *employeeRepository) List(ctx context.Context, filter repository.ListFilter, page repository.PageRequest) (repository.Page[domain.Employee], error) {
	query := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&employeeModel{})
		if filter.ActiveOnly {
			q = q.Where("active = ?", true)
		}
		return q
	}
	return findPage(query, page, repository.EmployeeSortFields, employeeModel.toDomain)
}

func (r *employeeRepository) Search(ctx context.Context, term string, page repository.PageRequest) (repository.Page[domain.Employee], error) {
	pattern := repository.SearchPattern(term)
	query := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&employeeModel{}).
			Where("LOWER(name) LIKE ? OR LOWER(surname) LIKE ?", pattern, pattern)
	}
	return findPage(query, page, repository.EmployeeSortFields, employeeModel.toDomain)
}
