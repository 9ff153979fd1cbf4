package routes

import (
	"github.com/gofiber/fiber/v2"

	"rules-directory/interfaces/api/handlers"
)

func SetupCategoryRoutes(app fiber.Router, h *handlers.Handlers) {
	categories := app.Group("/categories")

	categories.Post("/", h.CategoryHandler.Create)
	categories.Get("/", h.CategoryHandler.List)           // ?q= search, ?page=&limit= paged, else full list
	categories.Get("/search", h.CategoryHandler.Search)   // before /:id
	categories.Get("/:id/rules", h.CategoryHandler.GetRules)
	categories.Get("/:id", h.CategoryHandler.GetByID)
	categories.Patch("/:id", h.CategoryHandler.Update)
	categories.Delete("/:id", h.CategoryHandler.Delete)
}
