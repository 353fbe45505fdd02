package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bwcsoft/zapateria-api/internal/application/dto"
	"github.com/bwcsoft/zapateria-api/internal/application/usecase"
)

// CatalogHandler maneja marcas, categorías y tallas (protegido).
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// CreateBrand POST /api/brands
func (h *CatalogHandler) CreateBrand(c *fiber.Ctx) error {
	var in dto.NameRequest
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	brand, err := h.uc.CreateBrand(&in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(brand)
}

// ListBrands GET /api/brands
func (h *CatalogHandler) ListBrands(c *fiber.Ctx) error {
	brands, err := h.uc.ListBrands()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(brands)
}

// UpdateBrand PUT /api/brands/:id
func (h *CatalogHandler) UpdateBrand(c *fiber.Ctx) error {
	var in dto.NameRequest
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	brand, err := h.uc.UpdateBrand(c.Params("id"), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(brand)
}

// DeleteBrand DELETE /api/brands/:id
func (h *CatalogHandler) DeleteBrand(c *fiber.Ctx) error {
	if err := h.uc.DeleteBrand(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "marca eliminada"})
}

// CreateCategory POST /api/categories
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.NameRequest
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	category, err := h.uc.CreateCategory(&in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// ListCategories GET /api/categories
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.uc.ListCategories()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(categories)
}

// UpdateCategory PUT /api/categories/:id
func (h *CatalogHandler) UpdateCategory(c *fiber.Ctx) error {
	var in dto.NameRequest
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	category, err := h.uc.UpdateCategory(c.Params("id"), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(category)
}

// DeleteCategory DELETE /api/categories/:id
func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.uc.DeleteCategory(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "categoría eliminada"})
}

// CreateSize POST /api/sizes
func (h *CatalogHandler) CreateSize(c *fiber.Ctx) error {
	var in dto.NameRequest
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	size, err := h.uc.CreateSize(&in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(size)
}

// ListSizes GET /api/sizes
func (h *CatalogHandler) ListSizes(c *fiber.Ctx) error {
	sizes, err := h.uc.ListSizes()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sizes)
}

// DeleteSize DELETE /api/sizes/:id
func (h *CatalogHandler) DeleteSize(c *fiber.Ctx) error {
	if err := h.uc.DeleteSize(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "talla eliminada"})
}
