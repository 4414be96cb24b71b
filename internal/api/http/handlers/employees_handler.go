package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/org-service/internal/api/dto"
	"github.com/spec-kit/org-service/internal/domain"
	"github.com/spec-kit/org-service/internal/service"
	apperrors "github.com/spec-kit/org-service/pkg/util/errorutil"
)

const employeeResource = "employee"

// EmployeesHandler serves /api/employees.
type EmployeesHandler struct {
	service *service.EmployeeService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(employeeService *service.EmployeeService) *EmployeesHandler {
	return &EmployeesHandler{service: employeeService}
}

// List handles GET /api/employees.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	page, err := parsePageRequest(c)
	if err != nil {
		return err
	}
	result, err := h.service.List(c.UserContext(), page, parseActiveOnly(c))
	if err != nil {
		return toHTTPError(err, employeeResource)
	}
	return respondPage(c, result, employeeResponse)
}

// Search handles GET /api/employees/search.
func (h *EmployeesHandler) Search(c *fiber.Ctx) error {
	page, err := parsePageRequest(c)
	if err != nil {
		return err
	}
	term, err := parseSearchTerm(c)
	if err != nil {
		return err
	}
	result, err := h.service.Search(c.UserContext(), page, term)
	if err != nil {
		return toHTTPError(err, employeeResource)
	}
	return respondPage(c, result, employeeResponse)
}

// Get handles GET /api/employees/:id.
func (h *EmployeesHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	employee, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return toHTTPError(err, employeeResource)
	}
	return c.JSON(employeeResponse(employee))
}

// Create handles POST /api/employees.
func (h *EmployeesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Password == "" {
		return apperrors.NewValidationError("password required", nil)
	}
	in, err := employeeInput(req.EmployeeRequest)
	if err != nil {
		return err
	}

	employee, err := h.service.Create(c.UserContext(), service.CreateEmployeeInput{EmployeeInput: in, Password: req.Password})
	if err != nil {
		return toHTTPError(err, employeeResource)
	}
	return c.Status(fiber.StatusCreated).JSON(employeeResponse(employee))
}

// Update handles PUT /api/employees/:id.
func (h *EmployeesHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	in, err := employeeInput(req)
	if err != nil {
		return err
	}

	employee, err := h.service.Update(c.UserContext(), id, in)
	if err != nil {
		return toHTTPError(err, employeeResource)
	}
	return c.JSON(employeeResponse(employee))
}

// UpdatePassword handles PATCH /api/employees/:id/password.
func (h *EmployeesHandler) UpdatePassword(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.PasswordRequest
	if err := c.BodyParser(&req); err != nil || req.Password == "" {
		return apperrors.NewValidationError("password required", nil)
	}

	employee, err := h.service.UpdatePassword(c.UserContext(), id, req.Password)
	if err != nil {
		return toHTTPError(err, employeeResource)
	}
	return c.JSON(employeeResponse(employee))
}

// Activate handles PATCH /api/employees/:id/activate.
func (h *EmployeesHandler) Activate(c *fiber.Ctx) error {
	return h.setStatus(c, true)
}

// Deactivate handles PATCH /api/employees/:id/deactivate.
func (h *EmployeesHandler) Deactivate(c *fiber.Ctx) error {
	return h.setStatus(c, false)
}

func (h *EmployeesHandler) setStatus(c *fiber.Ctx, active bool) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	employee, err := h.service.SetStatus(c.UserContext(), id, active)
	if err != nil {
		return toHTTPError(err, employeeResource)
	}
	return c.JSON(employeeResponse(employee))
}

// Delete handles DELETE /api/employees/:id.
func (h *EmployeesHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return toHTTPError(err, employeeResource)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func employeeInput(req dto.EmployeeRequest) (service.EmployeeInput, error) {
	if req.PersonalID == "" {
		return service.EmployeeInput{}, apperrors.NewValidationError("personal_id required", nil)
	}
	position, err := parsePosition(req.Position)
	if err != nil {
		return service.EmployeeInput{}, apperrors.NewValidationError("unknown position", map[string]any{"position": req.Position})
	}
	return service.EmployeeInput{
		Active:       activeOrDefault(req.Active),
		Name:         req.Name,
		Surname:      req.Surname,
		PersonalID:   req.PersonalID,
		Age:          req.Age,
		Position:     position,
		DepartmentID: req.DepartmentID,
	}, nil
}

func employeeResponse(e *domain.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:           e.ID,
		Active:       e.Active,
		Name:         e.Name,
		Surname:      e.Surname,
		PersonalID:   e.PersonalID,
		Age:          e.Age,
		Position:     e.Position.Label(),
		DepartmentID: e.DepartmentID,
	}
}
