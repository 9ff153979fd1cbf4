package routes

import (
	"github.com/gofiber/fiber/v2"

	"rules-directory/interfaces/api/handlers"
)

func SetupMcpServerRoutes(app fiber.Router, h *handlers.Handlers) {
	servers := app.Group("/mcp-servers")

	servers.Post("/", h.McpServerHandler.Create)
	servers.Get("/", h.McpServerHandler.List) // ?q= search (unpaginated), else always paginated
	servers.Get("/search", h.McpServerHandler.Search)
	servers.Get("/slug/:slug", h.McpServerHandler.GetBySlug)
	servers.Get("/:id", h.McpServerHandler.GetByID)
	servers.Patch("/:id", h.McpServerHandler.Update)
	servers.Delete("/:id", h.McpServerHandler.Delete)
}
