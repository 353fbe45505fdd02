package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bwcsoft/zapateria-api/internal/application/dto"
	"github.com/bwcsoft/zapateria-api/internal/application/usecase"
)

// SupplierHandler maneja el CRUD de proveedores (protegido).
type SupplierHandler struct {
	uc *usecase.SupplierUseCase
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// Create POST /api/suppliers
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	supplier, err := h.uc.Create(&in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(supplier)
}

// GetByID GET /api/suppliers/:id
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	supplier, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(supplier)
}

// List GET /api/suppliers
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)
	suppliers, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(suppliers)
}

// Update PUT /api/suppliers/:id
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	supplier, err := h.uc.Update(c.Params("id"), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(supplier)
}

// Delete DELETE /api/suppliers/:id
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "proveedor eliminado"})
}

// CustomerHandler maneja el CRUD de clientes (protegido).
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	customer, err := h.uc.Create(&in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// GetByID GET /api/customers/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	customer, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(customer)
}

// List GET /api/customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)
	customers, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(customers)
}

// Update PUT /api/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	customer, err := h.uc.Update(c.Params("id"), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(customer)
}

// Delete DELETE /api/customers/:id
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "cliente eliminado"})
}
