package handlers

import (
	"github.com/gofiber/fiber/v2"

	"rules-directory/domain/dto"
	"rules-directory/domain/services"
	"rules-directory/pkg/logger"
	"rules-directory/pkg/utils"
)

const defaultCategoryPageSize = 5

type CategoryHandler struct {
	categoryService services.CategoryService
	ruleService     services.RuleService
}

func NewCategoryHandler(categoryService services.CategoryService, ruleService services.RuleService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		ruleService:     ruleService,
	}
}

// Create handles POST /categories.
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateCategoryRequest
	if err := utils.DecodeStrict(c.Body(), &req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, err.Error())
	}

	if err := utils.ValidateStruct(&req); err != nil {
		messages := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", messages)
		return utils.ValidationErrorResponse(c, messages)
	}

	category, err := h.categoryService.Create(ctx, &req)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.CreatedResponse(c, dto.CategoryToCategoryResponse(category))
}

// List handles GET /categories. With ?q it searches; with ?page or ?limit it
// pages; otherwise it returns the full listing.
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if q := c.Query("q"); q != "" {
		categories, err := h.categoryService.Search(ctx, q)
		if err != nil {
			return serviceErrorResponse(c, err)
		}
		return utils.SuccessResponse(c, dto.CategoriesToCategoryResponses(categories))
	}

	if c.Query("page") != "" || c.Query("limit") != "" {
		page := parsePage(c, "page", 1)
		limit := parsePage(c, "limit", defaultCategoryPageSize)

		categories, total, err := h.categoryService.FindAllPaginated(ctx, page, limit)
		if err != nil {
			return serviceErrorResponse(c, err)
		}
		return utils.SuccessResponse(c, dto.NewPaginated(dto.CategoriesToCategoryResponses(categories), total, page, limit))
	}

	categories, err := h.categoryService.FindAll(ctx)
	if err != nil {
		return serviceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.CategoriesToCategoryResponses(categories))
}

// Search handles GET /categories/search.
func (h *CategoryHandler) Search(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return utils.BadRequestResponse(c, "q should not be empty")
	}

	categories, err := h.categoryService.Search(c.UserContext(), q)
	if err != nil {
		return serviceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.CategoriesToCategoryResponses(categories))
}

// GetByID handles GET /categories/:id.
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	category, err := h.categoryService.FindOne(c.UserContext(), id)
	if err != nil {
		return serviceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.CategoryToCategoryResponse(category))
}

// GetRules handles GET /categories/:id/rules. An unknown category yields an
// empty list, matching the list contract rather than a lookup.
func (h *CategoryHandler) GetRules(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	rules, err := h.ruleService.FindByCategory(c.UserContext(), id)
	if err != nil {
		return serviceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.RulesToRuleResponses(rules))
}

// Update handles PATCH /categories/:id.
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateCategoryRequest
	if err := utils.DecodeStrict(c.Body(), &req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, err.Error())
	}

	if err := utils.ValidateStruct(&req); err != nil {
		messages := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", messages)
		return utils.ValidationErrorResponse(c, messages)
	}

	category, err := h.categoryService.Update(ctx, id, &req)
	if err != nil {
		return serviceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.CategoryToCategoryResponse(category))
}

// Delete handles DELETE /categories/:id.
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.categoryService.Remove(c.UserContext(), id); err != nil {
		return serviceErrorResponse(c, err)
	}
	return utils.NoContentResponse(c)
}
