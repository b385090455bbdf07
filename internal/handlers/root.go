package handlers

import (
	"github.com/gofiber/fiber/v3"

	"bizlens/internal/models"
)

// RootMessage is returned by GET /.
const RootMessage = "Business text analytics is running"

// Root reports that the service is up.
func Root(c fiber.Ctx) error {
	return c.JSON(models.MessageResponse{Message: RootMessage})
}
