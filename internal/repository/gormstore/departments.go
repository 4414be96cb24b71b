package gormstore

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/spec-kit/org-service/internal/domain"
	"github.com/spec-kit/org-service/internal/repository"
)

type departmentRepository struct {
	db *gorm.DB
}

func checkDirectorate(tx *gorm.DB, id *int64) error {
	if id == nil {
		return nil
	}
	var count int64
	if err := tx.Model(&directorateModel{}).Where("id = ?", *id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%w: directorate %d", domain.ErrReferenced, *id)
	}
	return nil
}

func (r *departmentRepository) Create(ctx context.Context, d *domain.Department) error {
	m := departmentFromDomain(d)
	m.ID = 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkDirectorate(tx, m.DirectorateID); err != nil {
			return err
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		return mapError(err, domain.ErrReferenced)
	}
	d.ID, d.CreatedAt, d.UpdatedAt = m.ID, m.CreatedAt, m.UpdatedAt
	return nil
}

func (r *departmentRepository) Update(ctx context.Context, d *domain.Department) error {
	m := departmentFromDomain(d)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing departmentModel
		if err := tx.First(&existing, d.ID).Error; err != nil {
			return err
		}
		if err := checkDirectorate(tx, m.DirectorateID); err != nil {
			return err
		}
		m.CreatedAt = existing.CreatedAt
		return tx.Select("*").Omit("id", "created_at").Updates(&m).Error
	})
	if err != nil {
		return mapError(err, domain.ErrReferenced)
	}
	d.CreatedAt, d.UpdatedAt = m.CreatedAt, m.UpdatedAt
	return nil
}

func (r *departmentRepository) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	var m departmentModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, mapError(err, domain.ErrReferenced)
	}
	d := m.toDomain()
	return &d, nil
}

func (r *departmentRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing departmentModel
		if err := tx.First(&existing, id).Error; err != nil {
			return err
		}
		var members int64
		if err := tx.Model(&employeeModel{}).Where("department_id = ?", id).Count(&members).Error; err != nil {
			return err
		}
		if members > 0 {
			return fmt.Errorf("%w: department %d has %d employees", domain.ErrReferenced, id, members)
		}
		return tx.Delete(&departmentModel{}, id).Error
	})
	return mapError(err, domain.ErrReferenced)
}

func (r *departmentRepository) List(ctx context.Context, filter repository.ListFilter, page repository.PageRequest) (repository.Page[domain.Department], error) {
	query := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&departmentModel{})
		if filter.ActiveOnly {
			q = q.Where("active = ?", true)
		}
		return q
	}
	return findPage(query, page, repository.DepartmentSortFields, departmentModel.toDomain)
}

func (r *departmentRepository) Search(ctx context.Context, term string, page repository.PageRequest) (repository.Page[domain.Department], error) {
	pattern := repository.SearchPattern(term)
	query := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&departmentModel{}).
			Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	return findPage(query, page, repository.DepartmentSortFields, departmentModel.toDomain)
}
