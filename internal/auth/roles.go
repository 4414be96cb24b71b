package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/org-service/internal/domain"
	apperrors "github.com/spec-kit/org-service/pkg/util/errorutil"
)

// Role is an authorization tag of the form ROLE_<POSITION>.
type Role string

const rolePrefix = "ROLE_"

const (
	RoleEmployee            Role = rolePrefix + Role(domain.PositionEmployee)
	RoleDepartmentHead      Role = rolePrefix + Role(domain.PositionDepartmentHead)
	RoleDirectorateDirector Role = rolePrefix + Role(domain.PositionDirectorateDirector)
)

// RoleFor returns the role tag naming a single position.
func RoleFor(p domain.Position) Role {
	return rolePrefix + Role(p)
}

// RolesFor derives the roles held by an employee in position p. A position
// grants its own role and the roles of every lower-ranked position, listed
// from the highest rank down. Unknown positions grant nothing.
func RolesFor(p domain.Position) []Role {
	rank := p.Rank()
	if rank < 0 {
		return []Role{}
	}
	positions := domain.Positions()
	roles := make([]Role, 0, rank+1)
	for i := len(positions) - 1; i >= 0; i-- {
		if positions[i].Rank() <= rank {
			roles = append(roles, RoleFor(positions[i]))
		}
	}
	return roles
}

// RoleStrings converts roles to their claim representation.
func RoleStrings(roles []Role) []string {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, string(r))
	}
	return out
}

// RequireAnyRole ensures the authenticated principal carries at least one of the allowed roles.
func RequireAnyRole(allowed ...Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		for _, role := range allowed {
			if principal.HasRole(role) {
				return c.Next()
			}
		}
		return apperrors.NewForbidden("insufficient role")
	}
}
