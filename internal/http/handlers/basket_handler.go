package handlers

import (
	applog "parana/internal/log"
	"parana/internal/metrics"
	"parana/internal/services"
	"parana/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type BasketHandler struct {
	Basket  *services.BasketService
	Metrics *metrics.Metrics
}

type addItemReq struct {
	ProductID string `json:"productId"`
	SellerID  string `json:"sellerId"`
	Qty       int    `json:"qty"`
}

func (h *BasketHandler) Add(c *fiber.Ctx) error {
	var req addItemReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed body"})
	}
	productID, ok := validate.ID(req.ProductID)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid productId"})
	}
	sellerID, ok := validate.ID(req.SellerID)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid sellerId"})
	}

	if err := h.Basket.Add(shopperID(c), productID, sellerID, req.Qty); err != nil {
		return respondErr(c, "basket.add", err)
	}
	h.Metrics.ItemsAdded.Inc()
	applog.Info(c, "basket.add", map[string]any{"product_id": productID, "seller_id": sellerID, "qty": req.Qty})
	return c.SendStatus(fiber.StatusCreated)
}

func (h *BasketHandler) View(c *fiber.Ctx) error {
	bv, err := h.Basket.View(shopperID(c))
	if err != nil {
		return respondErr(c, "basket.view", err)
	}
	return c.JSON(fiber.Map{"items": bv.Items, "total": bv.Total})
}

type updateQtyReq struct {
	Qty int `json:"qty"`
}

func (h *BasketHandler) UpdateQuantity(c *fiber.Ctx) error {
	productID, ok := validate.ID(c.Params("productID"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	var req updateQtyReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed body"})
	}

	if err := h.Basket.UpdateQuantity(shopperID(c), productID, req.Qty); err != nil {
		return respondErr(c, "basket.update", err)
	}
	applog.Info(c, "basket.update", map[string]any{"product_id": productID, "qty": req.Qty})
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *BasketHandler) Remove(c *fiber.Ctx) error {
	productID, ok := validate.ID(c.Params("productID"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	if err := h.Basket.Remove(shopperID(c), productID); err != nil {
		return respondErr(c, "basket.remove", err)
	}
	applog.Info(c, "basket.remove", map[string]any{"product_id": productID})
	return c.SendStatus(fiber.StatusNoContent)
}
