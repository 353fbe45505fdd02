package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/bwcsoft/zapateria-api/internal/application/dto"
	"github.com/bwcsoft/zapateria-api/internal/application/inventory"
)

// InventoryHandler maneja movimientos, consultas de stock y reconciliación (protegido).
type InventoryHandler struct {
	register  *inventory.RegisterMovementUseCase
	queries   *inventory.QueryUseCase
	reconcile *inventory.ReconcileUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	register *inventory.RegisterMovementUseCase,
	queries *inventory.QueryUseCase,
	reconcile *inventory.ReconcileUseCase,
) *InventoryHandler {
	return &InventoryHandler{register: register, queries: queries, reconcile: reconcile}
}

// RegisterMovement registra un ajuste o traslado. El actor sale del token.
// POST /api/inventory/movements
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterMovementRequest
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	if err := h.register.RegisterMovement(c.Context(), userID, in); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "movimiento registrado"})
}

// ListRecentMovements últimos movimientos del libro.
// GET /api/inventory/movements?limit=20
func (h *InventoryHandler) ListRecentMovements(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	movements, err := h.queries.ListRecentMovements(c.Context(), limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(movements)
}

// ListMovementsByProduct historial de un producto.
// GET /api/inventory/movements/product/:id
func (h *InventoryHandler) ListMovementsByProduct(c *fiber.Ctx) error {
	page := parsePage(c)
	movements, err := h.queries.ListMovementsByProduct(c.Context(), c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(movements)
}

// ListMovementsByBranch historial de una sucursal.
// GET /api/inventory/movements/branch/:id
func (h *InventoryHandler) ListMovementsByBranch(c *fiber.Ctx) error {
	page := parsePage(c)
	movements, err := h.queries.ListMovementsByBranch(c.Context(), c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(movements)
}

// GetStock stock de un producto en una sucursal (cero si no hay fila).
// GET /api/inventory/stock/:productId/:branchId
func (h *InventoryHandler) GetStock(c *fiber.Ctx) error {
	stock, err := h.queries.GetStock(c.Context(), c.Params("productId"), c.Params("branchId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stock)
}

// ListStockByBranch stock completo de una sucursal.
// GET /api/inventory/stock/branch/:id
func (h *InventoryHandler) ListStockByBranch(c *fiber.Ctx) error {
	stock, err := h.queries.ListStockByBranch(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stock)
}

// ListStockByProduct stock de un producto en todas las sucursales.
// GET /api/inventory/stock/product/:id
func (h *InventoryHandler) ListStockByProduct(c *fiber.Ctx) error {
	stock, err := h.queries.ListStockByProduct(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stock)
}

// ListLowStock entradas con cantidad <= threshold.
// GET /api/inventory/stock/low?threshold=10
func (h *InventoryHandler) ListLowStock(c *fiber.Ctx) error {
	threshold := 10
	if v := c.Query("threshold"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "threshold inválido"})
		}
		threshold = n
	}
	stock, err := h.queries.ListLowStock(c.Context(), threshold)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stock)
}

// Reconcile reconstruye el stock desde el libro y reporta discrepancias.
// GET /api/inventory/reconciliation
func (h *InventoryHandler) Reconcile(c *fiber.Ctx) error {
	result, err := h.reconcile.Reconcile(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}
