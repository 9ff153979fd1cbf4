package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"rules-directory/domain/apperrors"
	"rules-directory/domain/services"
	"rules-directory/pkg/logger"
	"rules-directory/pkg/utils"
)

type Services struct {
	CategoryService  services.CategoryService
	RuleService      services.RuleService
	McpServerService services.McpServerService
}

type Handlers struct {
	CategoryHandler  *CategoryHandler
	RuleHandler      *RuleHandler
	McpServerHandler *McpServerHandler
}

func NewHandlers(s *Services) *Handlers {
	return &Handlers{
		CategoryHandler:  NewCategoryHandler(s.CategoryService, s.RuleService),
		RuleHandler:      NewRuleHandler(s.RuleService),
		McpServerHandler: NewMcpServerHandler(s.McpServerService),
	}
}

// parseIDParam parses a numeric path segment. Non-numeric ids are malformed
// input, not a missing resource.
func parseIDParam(c *fiber.Ctx, name string) (int, error) {
	id, err := strconv.Atoi(c.Params(name))
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Validation failed (numeric string is expected)")
	}
	return id, nil
}

// parsePage reads a page/limit query value, falling back to the resource
// default when absent or non-numeric. Zero and negative values pass through
// untouched.
func parsePage(c *fiber.Ctx, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

// serviceErrorResponse maps typed service errors onto their status codes.
func serviceErrorResponse(c *fiber.Ctx, err error) error {
	if apperrors.IsNotFound(err) {
		return utils.NotFoundResponse(c, err.Error())
	}
	if apperrors.IsConflict(err) {
		return utils.ConflictResponse(c, err.Error())
	}
	logger.ErrorContext(c.UserContext(), "Service call failed", "error", err)
	return utils.InternalServerErrorResponse(c)
}
