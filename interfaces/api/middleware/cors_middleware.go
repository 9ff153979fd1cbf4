package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"rules-directory/pkg/config"
)

// CorsMiddleware allows the configured frontend origin; in development the
// local frontend ports are allowed as well.
func CorsMiddleware(cfg *config.Config) fiber.Handler {
	origins := []string{cfg.CORS.FrontendURL}
	if !cfg.IsProduction() {
		origins = append(origins, "http://localhost:3001", "http://127.0.0.1:3001")
	}

	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(origins, ","),
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
	})
}
