package middleware

import (
	"github.com/gofiber/fiber/v2"

	"rules-directory/pkg/logger"
	"rules-directory/pkg/utils"
)

// ErrorHandler is the fiber fallback for errors escaping a handler: fiber
// errors (bad route params, 405s) and anything unexpected. Typed service
// errors never reach it, handlers translate those themselves.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		}

		if code >= 500 {
			logger.ErrorContext(c.UserContext(), "Unhandled error", "error", err)
		} else {
			logger.WarnContext(c.UserContext(), "Request rejected", "status", code, "error", err)
		}

		return utils.ErrorResponse(c, code, message)
	}
}
