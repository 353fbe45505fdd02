package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bwcsoft/zapateria-api/internal/application/dto"
	"github.com/bwcsoft/zapateria-api/internal/application/purchasing"
)

// PurchaseHandler maneja compras a proveedor (protegido, solo administradores).
type PurchaseHandler struct {
	uc *purchasing.CreatePurchaseUseCase
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(uc *purchasing.CreatePurchaseUseCase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

// Create registra la compra e ingresa stock por cada línea en la misma transacción.
// POST /api/purchases
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePurchaseRequest
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	purchase, err := h.uc.CreatePurchase(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(purchase)
}

// GetByID obtiene una compra con sus líneas.
// GET /api/purchases/:id
func (h *PurchaseHandler) GetByID(c *fiber.Ctx) error {
	purchase, err := h.uc.GetPurchase(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(purchase)
}

// List lista compras paginadas.
// GET /api/purchases
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)
	purchases, err := h.uc.ListPurchases(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(purchases)
}

// Delete elimina el documento de compra. El stock ingresado y los asientos del
// libro permanecen.
// DELETE /api/purchases/:id
func (h *PurchaseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeletePurchase(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "compra eliminada"})
}
