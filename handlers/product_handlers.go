package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"portal/models"
	"portal/store"
)

const msgProductNotFound = "Produto não encontrado"

// ProductHandler serves the product CRUD endpoints over the catalog store.
type ProductHandler struct {
	store *store.Catalog
}

func NewProductHandler(catalog *store.Catalog) *ProductHandler {
	return &ProductHandler{store: catalog}
}

// HandleListProducts returns every product in insertion order.
// GET /api/products
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	return c.JSON(h.store.List())
}

// HandleGetProduct returns a single product by id.
// GET /api/products/:productId
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("productId"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": msgProductNotFound})
	}

	product, err := h.store.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": msgProductNotFound})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve product."})
	}
	return c.JSON(product)
}

// HandleCreateProduct validates the body, assigns the next id and persists.
// POST /api/products
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"status": "error", "message": "Invalid request body."})
	}
	if err := product.Validate(); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"status": "error", "message": err.Error()})
	}

	return c.JSON(h.store.Create(product))
}

// HandleUpdateProduct replaces every field of an existing product except its id.
// PUT /api/products/:productId
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("productId"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": msgProductNotFound})
	}

	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"status": "error", "message": "Invalid request body."})
	}
	if err := product.Validate(); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"status": "error", "message": err.Error()})
	}

	updated, err := h.store.Update(id, product)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": msgProductNotFound})
	}
	return c.JSON(updated)
}

// HandleDeleteProduct removes a product; its id is never reused.
// DELETE /api/products/:productId
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("productId"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": msgProductNotFound})
	}

	if err := h.store.Delete(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": msgProductNotFound})
	}
	return c.JSON(fiber.Map{"message": "Produto excluído com sucesso"})
}
