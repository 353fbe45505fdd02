package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bwcsoft/zapateria-api/internal/application/dto"
	"github.com/bwcsoft/zapateria-api/internal/application/usecase"
)

// ProductHandler maneja el CRUD de productos (protegido).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create crea un producto.
// POST /api/products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	product, err := h.uc.Create(&in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// GetByID obtiene un producto.
// GET /api/products/:id
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	product, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// List lista productos paginados.
// GET /api/products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)
	products, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

// Update actualiza un producto.
// PUT /api/products/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	product, err := h.uc.Update(c.Params("id"), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// Delete elimina un producto.
// DELETE /api/products/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "producto eliminado"})
}
