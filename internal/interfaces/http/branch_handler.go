package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bwcsoft/zapateria-api/internal/application/dto"
	"github.com/bwcsoft/zapateria-api/internal/application/usecase"
)

// BranchHandler maneja el CRUD de sucursales (protegido).
type BranchHandler struct {
	uc *usecase.BranchUseCase
}

// NewBranchHandler construye el handler.
func NewBranchHandler(uc *usecase.BranchUseCase) *BranchHandler {
	return &BranchHandler{uc: uc}
}

// Create POST /api/branches
func (h *BranchHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBranchRequest
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	branch, err := h.uc.Create(&in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(branch)
}

// GetByID GET /api/branches/:id
func (h *BranchHandler) GetByID(c *fiber.Ctx) error {
	branch, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(branch)
}

// List GET /api/branches
func (h *BranchHandler) List(c *fiber.Ctx) error {
	branches, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(branches)
}

// Update PUT /api/branches/:id
func (h *BranchHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateBranchRequest
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	branch, err := h.uc.Update(c.Params("id"), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(branch)
}

// Delete DELETE /api/branches/:id
func (h *BranchHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "sucursal eliminada"})
}
