package gormstore

import (
	"time"

	"github.com/spec-kit/org-service/internal/domain"
)

type employeeModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Active       bool   `gorm:"not null"`
	Name         string `gorm:"size:255"`
	Surname      string `gorm:"size:255"`
	PersonalID   string `gorm:"size:64;not null;uniqueIndex:employees_personal_id_key"`
	PasswordHash string `gorm:"size:255;not null"`
	Age          int
	Position     string `gorm:"size:32;not null"`
	DepartmentID *int64 `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (employeeModel) TableName() string { return "employees" }

type departmentModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Active        bool   `gorm:"not null"`
	Name          string `gorm:"size:255"`
	Description   string `gorm:"size:1024"`
	DirectorateID *int64 `gorm:"index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (departmentModel) TableName() string { return "departments" }

type directorateModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Active      bool   `gorm:"not null"`
	Name        string `gorm:"size:255"`
	Description string `gorm:"size:1024"`
	DirectorID  *int64 `gorm:"uniqueIndex:directorates_director_id_key"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (directorateModel) TableName() string { return "directorates" }

func employeeFromDomain(e *domain.Employee) employeeModel {
	return employeeModel{
		ID:           e.ID,
		Active:       e.Active,
		Name:         e.Name,
		Surname:      e.Surname,
		PersonalID:   e.PersonalID,
		PasswordHash: e.PasswordHash,
		Age:          e.Age,
		Position:     string(e.Position),
		DepartmentID: e.DepartmentID,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func (m employeeModel) toDomain() domain.Employee {
	return domain.Employee{
		ID:           m.ID,
		Active:       m.Active,
		Name:         m.Name,
		Surname:      m.Surname,
		PersonalID:   m.PersonalID,
		PasswordHash: m.PasswordHash,
		Age:          m.Age,
		Position:     domain.Position(m.Position),
		DepartmentID: m.DepartmentID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func departmentFromDomain(d *domain.Department) departmentModel {
	return departmentModel{
		ID:            d.ID,
		Active:        d.Active,
		Name:          d.Name,
		Description:   d.Description,
		DirectorateID: d.DirectorateID,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func (m departmentModel) toDomain() domain.Department {
	return domain.Department{
		ID:            m.ID,
		Active:        m.Active,
		Name:          m.Name,
		Description:   m.Description,
		DirectorateID: m.DirectorateID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func directorateFromDomain(d *domain.Directorate) directorateModel {
	return directorateModel{
		ID:          d.ID,
		Active:      d.Active,
		Name:        d.Name,
		Description: d.Description,
		DirectorID:  d.DirectorID,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (m directorateModel) toDomain() domain.Directorate {
	return domain.Directorate{
		ID:          m.ID,
		Active:      m.Active,
		Name:        m.Name,
		Description: m.Description,
		DirectorID:  m.DirectorID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
