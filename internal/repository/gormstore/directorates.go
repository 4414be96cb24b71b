package gormstore

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/spec-kit/org-service/internal/domain"
	"github.com/spec-kit/org-service/internal/repository"
)

type directorateRepository struct {
	db *gorm.DB
}

func checkDirector(tx *gorm.DB, dirID int64, employeeID *int64) error {
	if employeeID == nil {
		return nil
	}
	var count int64
	if err := tx.Model(&employeeModel{}).Where("id = ?", *employeeID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%w: employee %d", domain.ErrReferenced, *employeeID)
	}
	if err := tx.Model(&directorateModel{}).
		Where("director_id = ? AND id <> ?", *employeeID, dirID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: employee %d", domain.ErrDirectorAlreadyAssigned, *employeeID)
	}
	return nil
}

func (r *directorateRepository) Create(ctx context.Context, d *domain.Directorate) error {
	m := directorateFromDomain(d)
	m.ID = 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkDirector(tx, 0, m.DirectorID); err != nil {
			return err
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		return mapError(err, domain.ErrDirectorAlreadyAssigned)
	}
	d.ID, d.CreatedAt, d.UpdatedAt = m.ID, m.CreatedAt, m.UpdatedAt
	return nil
}

func (r *directorateRepository) Update(ctx context.Context, d *domain.Directorate) error {
	m := directorateFromDomain(d)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing directorateModel
		if err := tx.First(&existing, d.ID).Error; err != nil {
			return err
		}
		if err := checkDirector(tx, d.ID, m.DirectorID); err != nil {
			return err
		}
		m.CreatedAt = existing.CreatedAt
		return tx.Select("*").Omit("id", "created_at").Updates(&m).Error
	})
	if err != nil {
		return mapError(err, domain.ErrDirectorAlreadyAssigned)
	}
	d.CreatedAt, d.UpdatedAt = m.CreatedAt, m.UpdatedAt
	return nil
}

func (r *directorateRepository) GetByID(ctx context.Context, id int64) (*domain.Directorate, error) {
	var m directorateModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, mapError(err, domain.ErrDirectorAlreadyAssigned)
	}
	d := m.toDomain()
	return &d, nil
}

func (r *directorateRepository) GetByDirectorID(ctx context.Context, employeeID int64) (*domain.Directorate, error) {
	var m directorateModel
	if err := r.db.WithContext(ctx).Where("director_id = ?", employeeID).First(&m).Error; err != nil {
		return nil, mapError(err, domain.ErrDirectorAlreadyAssigned)
	}
	d := m.toDomain()
	return &d, nil
}

// Delete clears the directorate reference of its departments before
// removing the row.
func (r *directorateRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing directorateModel
		if err := tx.First(&existing, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&departmentModel{}).
			Where("directorate_id = ?", id).
			Update("directorate_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&directorateModel{}, id).Error
	})
	return mapError(err, domain.ErrDirectorAlreadyAssigned)
}

func (r *directorateRepository) List(ctx context.Context, filter repository.ListFilter, page repository.PageRequest) (repository.Page[domain.Directorate], error) {
	query := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&directorateModel{})
		if filter.ActiveOnly {
			q = q.Where("active = ?", true)
		}
		return q
	}
	return findPage(query, page, repository.DirectorateSortFields, directorateModel.toDomain)
}

func (r *directorateRepository) Search(ctx context.Context, term string, page repository.PageRequest) (repository.Page[domain.Directorate], error) {
	pattern := repository.SearchPattern(term)
	query := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&directorateModel{}).
			Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	return findPage(query, page, repository.DirectorateSortFields, directorateModel.toDomain)
}
