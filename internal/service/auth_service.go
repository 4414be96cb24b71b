package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/org-service/internal/auth"
	"github.com/spec-kit/org-service/internal/domain"
	"github.com/spec-kit/org-service/internal/events"
	"github.com/spec-kit/org-service/internal/repository"
)

// RegisterInput carries the self-registration form.
type RegisterInput struct {
	FirstName  string
	LastName   string
	PersonalID string
	Password   string
	Age        int
}

// AuthResult is returned by both registration and authentication.
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	Roles     []string
	Employee  *domain.Employee
}

// AuthService coordinates registration and login flows.
type AuthService struct {
	Dependencies
	employees repository.EmployeeRepository
	tokens    *auth.TokenManager
	hasher    auth.PasswordHasher

	dummyOnce sync.Once
	dummyHash string
}

// NewAuthService builds the service.
func NewAuthService(employees repository.EmployeeRepository, tokens *auth.TokenManager, hasher auth.PasswordHasher, deps Dependencies) *AuthService {
	return &AuthService{
		Dependencies: deps,
		employees:    employees,
		tokens:       tokens,
		hasher:       hasher,
	}
}

// Register creates an active EMPLOYEE without a department and returns a
// token for it. Personal id clashes surface from the store as
// domain.ErrDuplicatePersonalID; no lookup is made beforehand.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	employee := &domain.Employee{
		Active:       true,
		Name:         in.FirstName,
		Surname:      in.LastName,
		PersonalID:   in.PersonalID,
		PasswordHash: hash,
		Age:          in.Age,
		Position:     domain.PositionEmployee,
	}
	if err := s.employees.Create(ctx, employee); err != nil {
		return nil, err
	}

	result, err := s.issue(employee)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.NewEvent(events.EventEmployeeRegistered, employee.PersonalID, events.EmployeeRegisteredPayload{
		EmployeeID: employee.ID,
		Position:   employee.Position,
	}))
	return result, nil
}

// Authenticate verifies credentials and issues a token carrying the roles of
// the employee's position. Unknown ids and wrong passwords are reported the
// same way.
func (s *AuthService) Authenticate(ctx context.Context, personalID, password string) (*AuthResult, error) {
	employee, err := s.employees.GetByPersonalID(ctx, personalID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.hasher.Verify(password, s.dummy())
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(password, employee.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	if !employee.Active {
		return nil, domain.ErrAccountDisabled
	}

	result, err := s.issue(employee)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.NewEvent(events.EventEmployeeAuthenticated, employee.PersonalID, events.EmployeeAuthenticatedPayload{
		EmployeeID: employee.ID,
		Roles:      result.Roles,
	}))
	return result, nil
}

// TokenTTL exposes the configured token lifetime.
func (s *AuthService) TokenTTL() time.Duration {
	return s.tokens.TTL()
}

func (s *AuthService) issue(employee *domain.Employee) (*AuthResult, error) {
	roles := auth.RoleStrings(auth.RolesFor(employee.Position))
	token, expiresAt, err := s.tokens.Issue(employee.PersonalID, roles)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, ExpiresAt: expiresAt, Roles: roles, Employee: employee}, nil
}

func (s *AuthService) dummy() string {
	s.dummyOnce.Do(func() {
		hash, err := s.hasher.Hash("not-a-real-password")
		if err != nil {
			s.logger().Warn("dummy hash generation failed", zap.Error(err))
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}
