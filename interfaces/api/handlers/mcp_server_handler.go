package handlers

import (
	"github.com/gofiber/fiber/v2"

	"rules-directory/domain/dto"
	"rules-directory/domain/services"
	"rules-directory/pkg/logger"
	"rules-directory/pkg/utils"
)

const defaultMcpServerPageSize = 12

type McpServerHandler struct {
	mcpServerService services.McpServerService
}

func NewMcpServerHandler(mcpServerService services.McpServerService) *McpServerHandler {
	return &McpServerHandler{
		mcpServerService: mcpServerService,
	}
}

// Create handles POST /mcp-servers.
func (h *McpServerHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateMcpServerRequest
	if err := utils.DecodeStrict(c.Body(), &req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, err.Error())
	}

	if err := utils.ValidateStruct(&req); err != nil {
		messages := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", messages)
		return utils.ValidationErrorResponse(c, messages)
	}

	server, err := h.mcpServerService.Create(ctx, &req)
	if err != nil {
		return serviceErrorResponse(c, err)
	}
	return utils.CreatedResponse(c, dto.McpServerToMcpServerResponse(server))
}

// List handles GET /mcp-servers. With ?q it searches (ignoring pagination
// entirely); otherwise the listing is always paginated.
func (h *McpServerHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if q := c.Query("q"); q != "" {
		servers, err := h.mcpServerService.Search(ctx, q)
		if err != nil {
			return serviceErrorResponse(c, err)
		}
		return utils.SuccessResponse(c, dto.McpServersToMcpServerResponses(servers))
	}

	page := parsePage(c, "page", 1)
	limit := parsePage(c, "limit", defaultMcpServerPageSize)

	servers, total, err := h.mcpServerService.FindAllPaginated(ctx, page, limit)
	if err != nil {
		return serviceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.NewPaginated(dto.McpServersToMcpServerResponses(servers), total, page, limit))
}

// Search handles GET /mcp-servers/search.
func (h *McpServerHandler) Search(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return utils.BadRequestResponse(c, "q should not be empty")
	}

	servers, err := h.mcpServerService.Search(c.UserContext(), q)
	if err != nil {
		return serviceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.McpServersToMcpServerResponses(servers))
}

// GetBySlug handles GET /mcp-servers/slug/:slug.
func (h *McpServerHandler) GetBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return utils.BadRequestResponse(c, "MCP server slug is required")
	}

	server, err := h.mcpServerService.FindBySlug(c.UserContext(), slug)
	if err != nil {
		return serviceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.McpServerToMcpServerResponse(server))
}

// GetByID handles GET /mcp-servers/:id.
func (h *McpServerHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	server, err := h.mcpServerService.FindOne(c.UserContext(), id)
	if err != nil {
		return serviceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.McpServerToMcpServerResponse(server))
}

// Update handles PATCH /mcp-servers/:id.
func (h *McpServerHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateMcpServerRequest
	if err := utils.DecodeStrict(c.Body(), &req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, err.Error())
	}

	if err := utils.ValidateStruct(&req); err != nil {
		messages := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", messages)
		return utils.ValidationErrorResponse(c, messages)
	}

	server, err := h.mcpServerService.Update(ctx, id, &req)
	if err != nil {
		return serviceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.McpServerToMcpServerResponse(server))
}

// Delete handles DELETE /mcp-servers/:id.
func (h *McpServerHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.mcpServerService.Remove(c.UserContext(), id); err != nil {
		return serviceErrorResponse(c, err)
	}
	return utils.NoContentResponse(c)
}
