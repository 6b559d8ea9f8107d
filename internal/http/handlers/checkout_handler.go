package handlers

import (
	"errors"

	applog "parana/internal/log"
	"parana/internal/metrics"
	"parana/internal/services"

	"github.com/gofiber/fiber/v2"
)

type CheckoutHandler struct {
	Checkout *services.CheckoutService
	Metrics  *metrics.Metrics
}

// Summary presents the frozen total for confirmation; confirmation itself
// is the caller's POST, the service keeps no state between the two.
func (h *CheckoutHandler) Summary(c *fiber.Ctx) error {
	bv, err := h.Checkout.Summary(shopperID(c))
	if err != nil {
		return respondErr(c, "checkout.summary", err)
	}
	return c.JSON(fiber.Map{"items": bv.Items, "total": bv.Total})
}

func (h *CheckoutHandler) Confirm(c *fiber.Ctx) error {
	orderID, total, err := h.Checkout.Confirm(shopperID(c))
	if err != nil {
		if !errors.Is(err, services.ErrEmptyBasket) {
			h.Metrics.CheckoutFailures.Inc()
		}
		return respondErr(c, "checkout.confirm", err)
	}
	h.Metrics.OrdersPlaced.Inc()
	applog.Audit(c, "order.place", map[string]any{"order_id": orderID, "total": total})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"orderId": orderID, "total": total})
}
