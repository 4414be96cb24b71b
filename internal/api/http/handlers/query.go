package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/org-service/internal/api/dto"
	"github.com/spec-kit/org-service/internal/domain"
	"github.com/spec-kit/org-service/internal/repository"
	apperrors "github.com/spec-kit/org-service/pkg/util/errorutil"
)

// parsePageRequest reads page, size and the repeatable sort=field,dir params.
func parsePageRequest(c *fiber.Ctx) (repository.PageRequest, error) {
	page := repository.PageRequest{
		Page: parseInt(c.Query("page"), 0),
		Size: parseInt(c.Query("size"), repository.DefaultPageSize),
	}
	for _, raw := range c.Context().QueryArgs().PeekMulti("sort") {
		parts := strings.Split(string(raw), ",")
		field := strings.TrimSpace(parts[0])
		if field == "" {
			continue
		}
		order := repository.SortOrder{Field: field}
		if len(parts) > 1 {
			switch strings.ToLower(strings.TrimSpace(parts[1])) {
			case "asc", "":
			case "desc":
				order.Desc = true
			default:
				return page, apperrors.NewValidationError("sort direction must be asc or desc", map[string]any{"sort": string(raw)})
			}
		}
		page.Sort = append(page.Sort, order)
	}
	return page.Normalize(), nil
}

func parseActiveOnly(c *fiber.Ctx) bool {
	active, err := strconv.ParseBool(c.Query("active_only", "false"))
	return err == nil && active
}

func parseSearchTerm(c *fiber.Ctx) (string, error) {
	term := strings.TrimSpace(c.Query("search_term"))
	if term == "" {
		return "", apperrors.NewValidationError("search_term is required", nil)
	}
	return term, nil
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid id", map[string]any{"id": c.Params("id")})
	}
	return id, nil
}

func parseInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed < 0 {
		return def
	}
	return parsed
}

// parsePosition accepts the label ("Head of Department") or the enum name.
func parsePosition(raw string) (domain.Position, error) {
	if p, err := domain.PositionFromLabel(raw); err == nil {
		return p, nil
	}
	return domain.ParsePosition(raw)
}

func activeOrDefault(active *bool) bool {
	return active == nil || *active
}

// respondPage writes 204 for an empty page and the page envelope otherwise.
func respondPage[T any, R any](c *fiber.Ctx, page repository.Page[T], convert func(*T) R) error {
	if page.Empty() {
		return c.SendStatus(fiber.StatusNoContent)
	}
	items := make([]R, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, convert(&page.Items[i]))
	}
	return c.JSON(dto.PageResponse[R]{
		Data: items,
		Meta: dto.NewPageMeta(page.Page, page.Size, page.Total),
	})
}
