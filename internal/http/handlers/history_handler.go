package handlers

import (
	"parana/internal/services"

	"github.com/gofiber/fiber/v2"
)

type HistoryHandler struct {
	History *services.HistoryService
}

func (h *HistoryHandler) List(c *fiber.Ctx) error {
	rows, err := h.History.History(shopperID(c))
	if err != nil {
		return respondErr(c, "orders.history", err)
	}
	return c.JSON(fiber.Map{"orders": rows})
}
