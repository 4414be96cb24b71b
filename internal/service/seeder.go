package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/org-service/internal/auth"
	"github.com/spec-kit/org-service/internal/domain"
	"github.com/spec-kit/org-service/internal/repository"
)

const samplePassword = "password"

// Seeder loads the sample organization.
type Seeder struct {
	Dependencies
	store  *repository.Store
	hasher auth.PasswordHasher
}

// NewSeeder builds a seeder over store.
func NewSeeder(store *repository.Store, hasher auth.PasswordHasher, deps Dependencies) *Seeder {
	return &Seeder{Dependencies: deps, store: store, hasher: hasher}
}

// SeedSampleData writes five directorates, five departments and five
// employees, and makes Peter Petrov director of Finance. Nothing is written
// unless all three stores are empty; the boolean reports whether data was
// loaded.
func (s *Seeder) SeedSampleData(ctx context.Context) (bool, error) {
	empty, err := s.isEmpty(ctx)
	if err != nil || !empty {
		return false, err
	}

	directorates := make([]*domain.Directorate, 0, 5)
	for _, name := range []string{"Finance", "IT", "HR", "Operations", "Marketing"} {
		dir := &domain.Directorate{Active: true, Name: name, Description: name + " Directorate"}
		if err := s.store.Directorates.Create(ctx, dir); err != nil {
			return false, fmt.Errorf("seed directorate %s: %w", name, err)
		}
		directorates = append(directorates, dir)
	}

	departments := make([]*domain.Department, 0, 5)
	for i, name := range []string{"Accounts", "Infrastructure", "Recruitment", "Logistics", "Sales"} {
		dept := &domain.Department{
			Active:        true,
			Name:          name,
			Description:   name + " Department",
			DirectorateID: &directorates[i].ID,
		}
		if err := s.store.Departments.Create(ctx, dept); err != nil {
			return false, fmt.Errorf("seed department %s: %w", name, err)
		}
		departments = append(departments, dept)
	}

	hash, err := s.hasher.Hash(samplePassword)
	if err != nil {
		return false, err
	}
	people := []struct {
		name, surname, personalID string
		age                       int
		position                  domain.Position
	}{
		{"Peter", "Petrov", "10001", 30, domain.PositionDirectorateDirector},
		{"Ivan", "Ivanov", "10002", 25, domain.PositionDepartmentHead},
		{"Georgi", "Georgiev", "10003", 40, domain.PositionDepartmentHead},
		{"Aleksandar", "Aleksandrov", "10004", 35, domain.PositionEmployee},
		{"Mario", "Giev", "10005", 28, domain.PositionEmployee},
	}
	employees := make([]*domain.Employee, 0, len(people))
	for _, p := range people {
		e := &domain.Employee{
			Active:       true,
			Name:         p.name,
			Surname:      p.surname,
			PersonalID:   p.personalID,
			PasswordHash: hash,
			Age:          p.age,
			Position:     p.position,
			DepartmentID: &departments[0].ID,
		}
		if err := s.store.Employees.Create(ctx, e); err != nil {
			return false, fmt.Errorf("seed employee %s: %w", p.personalID, err)
		}
		employees = append(employees, e)
	}

	finance := directorates[0]
	if err := finance.SetDirector(employees[0]); err != nil {
		return false, err
	}
	if err := s.store.Directorates.Update(ctx, finance); err != nil {
		return false, fmt.Errorf("seed finance director: %w", err)
	}

	s.logger().Info("sample data loaded",
		zap.Int("directorates", len(directorates)),
		zap.Int("departments", len(departments)),
		zap.Int("employees", len(employees)),
	)
	return true, nil
}

func (s *Seeder) isEmpty(ctx context.Context) (bool, error) {
	probe := repository.PageRequest{Size: 1}
	employees, err := s.store.Employees.List(ctx, repository.ListFilter{}, probe)
	if err != nil {
		return false, err
	}
	departments, err := s.store.Departments.List(ctx, repository.ListFilter{}, probe)
	if err != nil {
		return false, err
	}
	directorates, err := s.store.Directorates.List(ctx, repository.ListFilter{}, probe)
	if err != nil {
		return false, err
	}
	return employees.Total == 0 && departments.Total == 0 && directorates.Total == 0, nil
}
