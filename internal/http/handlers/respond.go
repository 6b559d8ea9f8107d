package handlers

import (
	"errors"

	applog "parana/internal/log"
	"parana/internal/services"

	"github.com/gofiber/fiber/v2"
)

// respondErr maps service errors to HTTP statuses with a JSON body.
// Storage failures stay out of the response body.
func respondErr(c *fiber.Ctx, action string, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": services.ErrInvalidQuantity.Error()})
	case errors.Is(err, services.ErrUnknownShopper):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": services.ErrUnknownShopper.Error()})
	case errors.Is(err, services.ErrItemNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": services.ErrItemNotFound.Error()})
	case errors.Is(err, services.ErrEmptyBasket):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": services.ErrEmptyBasket.Error()})
	default:
		applog.Error(c, action, err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "something went wrong, please try again"})
	}
}
