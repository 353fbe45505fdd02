package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del catálogo (zapatería): marca, categoría y tallas
// referenciadas por ID; precios de compra y venta en decimal.
type Product struct {
	ID            string
	Name          string
	Description   string
	BrandID       string
	CategoryID    string
	SizeIDs       []string
	PurchasePrice decimal.Decimal
	SalePrice     decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
