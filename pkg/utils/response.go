package utils

import (
	"github.com/gofiber/fiber/v2"
	fiberutils "github.com/gofiber/fiber/v2/utils"
)

// Success bodies are the bare resource JSON (entity, list or page envelope).
// Error bodies keep the {statusCode, message, error} shape existing consumers
// already parse.

type HTTPError struct {
	Message    any    `json:"message"`
	Error      string `json:"error"`
	StatusCode int    `json:"statusCode"`
}

// ========== Success responses ==========

func SuccessResponse(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

func CreatedResponse(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func NoContentResponse(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// ========== Error responses ==========

func ErrorResponse(c *fiber.Ctx, statusCode int, message any) error {
	return c.Status(statusCode).JSON(HTTPError{
		Message:    message,
		Error:      fiberutils.StatusMessage(statusCode),
		StatusCode: statusCode,
	})
}

func BadRequestResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, fiber.StatusBadRequest, message)
}

// ValidationErrorResponse reports all failed constraints at once, one message
// per offending field.
func ValidationErrorResponse(c *fiber.Ctx, messages []string) error {
	return ErrorResponse(c, fiber.StatusBadRequest, messages)
}

func NotFoundResponse(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return ErrorResponse(c, fiber.StatusNotFound, message)
}

func ConflictResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, fiber.StatusConflict, message)
}

func InternalServerErrorResponse(c *fiber.Ctx) error {
	return ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
}
