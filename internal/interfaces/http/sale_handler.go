package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bwcsoft/zapateria-api/internal/application/dto"
	"github.com/bwcsoft/zapateria-api/internal/application/sales"
)

// SaleHandler maneja ventas (protegido, administradores y vendedores).
type SaleHandler struct {
	uc *sales.CreateSaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *sales.CreateSaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Create registra la venta y descuenta stock. El vendedor sale del token,
// nunca del body.
// POST /api/sales
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateSaleRequest
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	sale, err := h.uc.CreateSale(c.Context(), userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sale)
}

// GetByID obtiene una venta con sus líneas.
// GET /api/sales/:id
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	sale, err := h.uc.GetSale(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sale)
}

// List lista ventas paginadas.
// GET /api/sales
func (h *SaleHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)
	salesList, err := h.uc.ListSales(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(salesList)
}

// Delete elimina el documento de venta. El stock descontado y los asientos del
// libro permanecen.
// DELETE /api/sales/:id
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteSale(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "venta eliminada"})
}
