package handlers

import (
	"errors"

	applog "parana/internal/log"
	"parana/internal/services"
	"parana/internal/validate"

	"github.com/gofiber/fiber/v2"
)

const shopperHeader = "X-Shopper-ID"

// RequireShopper resolves the shopper identity once per request. An unknown
// shopper terminates the request, the API analogue of ending the session.
func RequireShopper(shoppers *services.ShopperService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := validate.ID(c.Get(shopperHeader))
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing or invalid " + shopperHeader + " header"})
		}
		sh, err := shoppers.Lookup(id)
		if err != nil {
			if errors.Is(err, services.ErrUnknownShopper) {
				applog.Security(c, "shopper.unknown", map[string]any{"shopper_id": id})
			}
			return respondErr(c, "shopper.lookup", err)
		}
		c.Locals("shopperID", sh.ID)
		c.Locals("shopperName", sh.FullName())
		return c.Next()
	}
}

func shopperID(c *fiber.Ctx) string {
	id, _ := c.Locals("shopperID").(string)
	return id
}
