package routes

import (
	"github.com/gofiber/fiber/v2"

	"rules-directory/interfaces/api/handlers"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers) {
	SetupHealthRoutes(app)

	// Resource routes live at the root, the frontend consumes them directly.
	SetupCategoryRoutes(app, h)
	SetupRuleRoutes(app, h)
	SetupMcpServerRoutes(app, h)
}
