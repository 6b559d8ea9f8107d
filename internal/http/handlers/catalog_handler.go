package handlers

import (
	"parana/internal/services"
	"parana/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	Catalog *services.CatalogService
}

func (h *CatalogHandler) Categories(c *fiber.Ctx) error {
	cats, err := h.Catalog.Categories()
	if err != nil {
		return respondErr(c, "catalog.categories", err)
	}
	return c.JSON(fiber.Map{"categories": cats})
}

func (h *CatalogHandler) Products(c *fiber.Ctx) error {
	catID, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid category id"})
	}
	products, err := h.Catalog.Products(catID)
	if err != nil {
		return respondErr(c, "catalog.products", err)
	}
	return c.JSON(fiber.Map{"categoryId": catID, "products": products})
}

func (h *CatalogHandler) Sellers(c *fiber.Ctx) error {
	productID, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	offers, err := h.Catalog.Offers(productID)
	if err != nil {
		return respondErr(c, "catalog.sellers", err)
	}
	return c.JSON(fiber.Map{"productId": productID, "sellers": offers})
}
