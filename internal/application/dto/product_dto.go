package dto

import "github.com/shopspring/decimal"

// NamedRef referencia id+nombre para marca/categoría/talla resueltas.
type NamedRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateProductRequest body para crear/actualizar productos.
type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required"`
	Description   string          `json:"description,omitempty"`
	BrandID       string          `json:"brand_id" validate:"required"`
	CategoryID    string          `json:"category_id" validate:"required"`
	SizeIDs       []string        `json:"size_ids,omitempty"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
}

// ProductResponse producto con referencias resueltas para mostrar.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Brand         *NamedRef       `json:"brand,omitempty"`
	Category      *NamedRef       `json:"category,omitempty"`
	Sizes         []NamedRef      `json:"sizes,omitempty"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
}

// NameRequest body para catálogos simples (marca, categoría, talla).
type NameRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreateBranchRequest body para sucursales.
type CreateBranchRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	State   *bool  `json:"state,omitempty"`
}
