package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/org-service/internal/api/dto"
	"github.com/spec-kit/org-service/internal/domain"
	"github.com/spec-kit/org-service/internal/service"
	apperrors "github.com/spec-kit/org-service/pkg/util/errorutil"
)

const departmentResource = "department"

// DepartmentsHandler serves /api/departments.
type DepartmentsHandler struct {
	service *service.DepartmentService
}

// NewDepartmentsHandler constructs handler.
func NewDepartmentsHandler(departmentService *service.DepartmentService) *DepartmentsHandler {
	return &DepartmentsHandler{service: departmentService}
}

func (h *DepartmentsHandler) List(c *fiber.Ctx) error {
	page, err := parsePageRequest(c)
	if err != nil {
		return err
	}
	result, err := h.service.List(c.UserContext(), page, parseActiveOnly(c))
	if err != nil {
		return toHTTPError(err, departmentResource)
	}
	return respondPage(c, result, departmentResponse)
}

func (h *DepartmentsHandler) Search(c *fiber.Ctx) error {
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
		return toHTTPError(err, departmentResource)
	}
	return respondPage(c, result, departmentResponse)
}

func (h *DepartmentsHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	dept, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return toHTTPError(err, departmentResource)
	}
	return c.JSON(departmentResponse(dept))
}

func (h *DepartmentsHandler) Create(c *fiber.Ctx) error {
	var req dto.DepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	dept, err := h.service.Create(c.UserContext(), departmentInput(req))
	if err != nil {
		return toHTTPError(err, departmentResource)
	}
	return c.Status(fiber.StatusCreated).JSON(departmentResponse(dept))
}

func (h *DepartmentsHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.DepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	dept, err := h.service.Update(c.UserContext(), id, departmentInput(req))
	if err != nil {
		return toHTTPError(err, departmentResource)
	}
	return c.JSON(departmentResponse(dept))
}

func (h *DepartmentsHandler) Activate(c *fiber.Ctx) error {
	return h.setStatus(c, true)
}

func (h *DepartmentsHandler) Deactivate(c *fiber.Ctx) error {
	return h.setStatus(c, false)
}

func (h *DepartmentsHandler) setStatus(c *fiber.Ctx, active bool) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	dept, err := h.service.SetStatus(c.UserContext(), id, active)
	if err != nil {
		return toHTTPError(err, departmentResource)
	}
	return c.JSON(departmentResponse(dept))
}

func (h *DepartmentsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return toHTTPError(err, departmentResource)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func departmentInput(req dto.DepartmentRequest) service.DepartmentInput {
	return service.DepartmentInput{
		Active:        activeOrDefault(req.Active),
		Name:          req.Name,
		Description:   req.Description,
		DirectorateID: req.DirectorateID,
	}
}

func departmentResponse(d *domain.Department) dto.DepartmentResponse {
	return dto.DepartmentResponse{
		ID:            d.ID,
		Active:        d.Active,
		Name:          d.Name,
		Description:   d.Description,
		DirectorateID: d.DirectorateID,
	}
}
