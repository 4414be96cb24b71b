package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/org-service/internal/api/dto"
	"github.com/spec-kit/org-service/internal/service"
	apperrors "github.com/spec-kit/org-service/pkg/util/errorutil"
)

// AuthHandler exposes registration and login.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	req.PersonalID = strings.TrimSpace(req.PersonalID)
	if req.PersonalID == "" || req.Password == "" {
		return apperrors.NewValidationError("personal_id and password required", nil)
	}

	result, err := h.auth.Register(c.UserContext(), service.RegisterInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		PersonalID: req.PersonalID,
		Password:   req.Password,
		Age:        req.Age,
	})
	if err != nil {
		return toHTTPError(err, "employee")
	}
	return c.JSON(authResponse(result))
}

// Authenticate handles POST /auth/authenticate.
func (h *AuthHandler) Authenticate(c *fiber.Ctx) error {
	var req dto.AuthenticateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	req.PersonalID = strings.TrimSpace(req.PersonalID)
	if req.PersonalID == "" || req.Password == "" {
		return apperrors.NewValidationError("personal_id and password required", nil)
	}

	result, err := h.auth.Authenticate(c.UserContext(), req.PersonalID, req.Password)
	if err != nil {
		return toHTTPError(err, "employee")
	}
	return c.JSON(authResponse(result))
}

func authResponse(result *service.AuthResult) dto.AuthResponse {
	return dto.AuthResponse{Token: result.Token, ExpiresAt: result.ExpiresAt, Roles: result.Roles}
}
