package handlers

import (
	"errors"

	"github.com/spec-kit/org-service/internal/domain"
	apperrors "github.com/spec-kit/org-service/pkg/util/errorutil"
)

// toHTTPError translates service errors into DomainErrors. resource names
// the entity for not-found responses.
func toHTTPError(err error, resource string) error {
	var de *apperrors.DomainError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &de):
		return de
	case errors.Is(err, domain.ErrNotFound):
		return apperrors.NewNotFound(resource, nil)
	case errors.Is(err, domain.ErrInvalidCredentials):
		return apperrors.NewUnauthorized("invalid credentials")
	case errors.Is(err, domain.ErrAccountDisabled):
		return apperrors.NewUnauthorized("account disabled")
	case domain.IsTokenError(err):
		return apperrors.NewUnauthorized("invalid token")
	case errors.Is(err, domain.ErrDuplicatePersonalID):
		return apperrors.NewConflict("personal id already in use", nil)
	case errors.Is(err, domain.ErrDirectorAlreadyAssigned):
		return apperrors.NewConflict("employee already directs a directorate", nil)
	case errors.Is(err, domain.ErrReferenced):
		return apperrors.NewConflict("record is referenced by other records", map[string]any{"reason": err.Error()})
	case errors.Is(err, domain.ErrUnknownPosition),
		errors.Is(err, domain.ErrPasswordTooLong),
		errors.Is(err, domain.ErrInvalidSort),
		errors.Is(err, domain.ErrInvalidDirectorAssignment):
		return apperrors.NewValidationError(err.Error(), nil)
	}
	return apperrors.NewInternalError(err)
}
