package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/org-service/internal/api/dto"
	"github.com/spec-kit/org-service/internal/domain"
	"github.com/spec-kit/org-service/internal/service"
	apperrors "github.com/spec-kit/org-service/pkg/util/errorutil"
)

const directorateResource = "directorate"

// DirectoratesHandler serves /api/directorates.
type DirectoratesHandler struct {
	service *service.DirectorateService
}

// NewDirectoratesHandler constructs handler.
func NewDirectoratesHandler(directorateService *service.DirectorateService) *DirectoratesHandler {
	return &DirectoratesHandler{service: directorateService}
}

func (h *DirectoratesHandler) List(c *fiber.Ctx) error {
	page, err := parsePageRequest(c)
	if err != nil {
		return err
	}
	result, err := h.service.List(c.UserContext(), page, parseActiveOnly(c))
	if err != nil {
		return toHTTPError(err, directorateResource)
	}
	return respondPage(c, result, directorateResponse)
}

func (h *DirectoratesHandler) Search(c *fiber.Ctx) error {
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
		return toHTTPError(err, directorateResource)
	}
	return respondPage(c, result, directorateResponse)
}

func (h *DirectoratesHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	dir, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return toHTTPError(err, directorateResource)
	}
	return c.JSON(directorateResponse(dir))
}

func (h *DirectoratesHandler) Create(c *fiber.Ctx) error {
	var req dto.DirectorateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	dir, err := h.service.Create(c.UserContext(), directorateInput(req))
	if err != nil {
		return toHTTPError(err, directorateResource)
	}
	return c.Status(fiber.StatusCreated).JSON(directorateResponse(dir))
}

func (h *DirectoratesHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.DirectorateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	dir, err := h.service.Update(c.UserContext(), id, directorateInput(req))
	if err != nil {
		return toHTTPError(err, directorateResource)
	}
	return c.JSON(directorateResponse(dir))
}

func (h *DirectoratesHandler) Activate(c *fiber.Ctx) error {
	return h.setStatus(c, true)
}

func (h *DirectoratesHandler) Deactivate(c *fiber.Ctx) error {
	return h.setStatus(c, false)
}

func (h *DirectoratesHandler) setStatus(c *fiber.Ctx, active bool) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	dir, err := h.service.SetStatus(c.UserContext(), id, active)
	if err != nil {
		return toHTTPError(err, directorateResource)
	}
	return c.JSON(directorateResponse(dir))
}

func (h *DirectoratesHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return toHTTPError(err, directorateResource)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func directorateInput(req dto.DirectorateRequest) service.DirectorateInput {
	return service.DirectorateInput{
		Active:      activeOrDefault(req.Active),
		Name:        req.Name,
		Description: req.Description,
		DirectorID:  req.DirectorID,
	}
}

func directorateResponse(d *domain.Directorate) dto.DirectorateResponse {
	return dto.DirectorateResponse{
		ID:          d.ID,
		Active:      d.Active,
		Name:        d.Name,
		Description: d.Description,
		DirectorID:  d.DirectorID,
	}
}
