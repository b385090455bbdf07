package api

import (
	"github.com/gofiber/fiber/v3"

	"bizlens/internal/models"
)

// jsonResult returns a 200 response with the analysis result as the body.
func jsonResult(c fiber.Ctx, result any) error {
	return c.JSON(result)
}

// jsonError returns an error response with the given HTTP status code.
func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status: models.StatusError,
		Error:  message,
	})
}
