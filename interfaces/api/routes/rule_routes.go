package routes

import (
	"github.com/gofiber/fiber/v2"

	"rules-directory/interfaces/api/handlers"
)

func SetupRuleRoutes(app fiber.Router, h *handlers.Handlers) {
	rules := app.Group("/rules")

	rules.Post("/", h.RuleHandler.Create)
	rules.Get("/", h.RuleHandler.List) // ?q= search, else full list; never paginated
	rules.Get("/search", h.RuleHandler.Search)
	rules.Get("/category/:categoryId", h.RuleHandler.GetByCategory)
	rules.Get("/slug/:slug", h.RuleHandler.GetBySlug)
	rules.Get("/:id", h.RuleHandler.GetByID)
	rules.Patch("/:id", h.RuleHandler.Update)
	rules.Delete("/:id", h.RuleHandler.Delete)
}
