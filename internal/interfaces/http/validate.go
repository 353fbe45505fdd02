package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/bwcsoft/zapateria-api/internal/application/dto"
)

var validate = validator.New()

// parseBody decodifica el body JSON y aplica las reglas validate de los tags.
// Responde 400 por sí mismo; el caller corta si devuelve error.
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		return err
	}
	if err := validate.Struct(out); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		return err
	}
	return nil
}

// parsePage lee limit/offset del query string con valores por defecto.
func parsePage(c *fiber.Ctx) dto.PageRequest {
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	if err := validate.Struct(&page); err != nil {
		page = dto.PageRequest{}
	}
	page.DefaultPage()
	return page
}
