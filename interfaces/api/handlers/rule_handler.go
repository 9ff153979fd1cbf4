package handlers

import (
	"github.com/gofiber/fiber/v2"

	"rules-directory/domain/dto"
	"rules-directory/domain/services"
	"rules-directory/pkg/logger"
	"rules-directory/pkg/utils"
)

type RuleHandler struct {
	ruleService services.RuleService
}

func NewRuleHandler(ruleService services.RuleService) *RuleHandler {
	return &RuleHandler{
		ruleService: ruleService,
	}
}

// Create handles POST /rules.
func (h *RuleHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateRuleRequest
	if err := utils.DecodeStrict(c.Body(), &req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, err.Error())
	}

	if err := utils.ValidateStruct(&req); err != nil {
		messages := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", messages)
		return utils.ValidationErrorResponse(c, messages)
	}

	rule, err := h.ruleService.Create(ctx, &req)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	// Category stays unset on the response until the rule is re-fetched.
	return utils.CreatedResponse(c, dto.RuleToRuleResponse(rule))
}

// List handles GET /rules. With ?q it searches; otherwise the full listing is
// returned. Rules have no paginated listing.
func (h *RuleHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if q := c.Query("q"); q != "" {
		rules, err := h.ruleService.Search(ctx, q)
		if err != nil {
			return serviceErrorResponse(c, err)
		}
		return utils.SuccessResponse(c, dto.RulesToRuleResponses(rules))
	}

	rules, err := h.ruleService.FindAll(ctx)
	if err != nil {
		return serviceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.RulesToRuleResponses(rules))
}

// Search handles GET /rules/search.
func (h *RuleHandler) Search(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return utils.BadRequestResponse(c, "q should not be empty")
	}

	rules, err := h.ruleService.Search(c.UserContext(), q)
	if err != nil {
		return serviceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.RulesToRuleResponses(rules))
}

// GetByCategory handles GET /rules/category/:categoryId.
func (h *RuleHandler) GetByCategory(c *fiber.Ctx) error {
	categoryID, err := parseIDParam(c, "categoryId")
	if err != nil {
		return err
	}

	rules, err := h.ruleService.FindByCategory(c.UserContext(), categoryID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.RulesToRuleResponses(rules))
}

// GetBySlug handles GET /rules/slug/:slug.
func (h *RuleHandler) GetBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return utils.BadRequestResponse(c, "Rule slug is required")
	}

	rule, err := h.ruleService.FindBySlug(c.UserContext(), slug)
	if err != nil {
		return serviceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.RuleToRuleResponse(rule))
}

// GetByID handles GET /rules/:id.
func (h *RuleHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	rule, err := h.ruleService.FindOne(c.UserContext(), id)
	if err != nil {
		return serviceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.RuleToRuleResponse(rule))
}

// Update handles PATCH /rules/:id.
func (h *RuleHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateRuleRequest
	if err := utils.DecodeStrict(c.Body(), &req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, err.Error())
	}

	if err := utils.ValidateStruct(&req); err != nil {
		messages := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", messages)
		return utils.ValidationErrorResponse(c, messages)
	}

	rule, err := h.ruleService.Update(ctx, id, &req)
	if err != nil {
		return serviceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.RuleToRuleResponse(rule))
}

// Delete handles DELETE /rules/:id.
func (h *RuleHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.ruleService.Remove(c.UserContext(), id); err != nil {
		return serviceErrorResponse(c, err)
	}
	return utils.NoContentResponse(c)
}
