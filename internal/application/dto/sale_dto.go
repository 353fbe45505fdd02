package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleLineRequest línea de venta del request.
type SaleLineRequest struct {
	ProductID  string          `json:"product_id" validate:"required"`
	Quantity   int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// CreateSaleRequest body para POST /api/sales. El cliente llega por ID, inline
// (customer_name crea uno nuevo) o se usa el cliente mostrador si no viene
// ninguno. El usuario actor NO viaja en el body: lo aporta el token.
type CreateSaleRequest struct {
	CustomerID    string `json:"customer_id,omitempty"`
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`
	CustomerPhone string `json:"customer_phone,omitempty"`

	BranchID string            `json:"branch_id" validate:"required"`
	Details  []SaleLineRequest `json:"details" validate:"required,min=1,dive"`
}

// CustomerInfo cliente resuelto para mostrar.
type CustomerInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// SaleLineResponse línea persistida.
type SaleLineResponse struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"product_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// SaleResponse venta persistida con referencias resueltas.
type SaleResponse struct {
	ID             string             `json:"id"`
	Customer       CustomerInfo       `json:"customer"`
	Branch         BranchInfo         `json:"branch"`
	UserID         string             `json:"user_id"`
	DocumentStatus StatusInfo         `json:"document_status"`
	SaleDate       time.Time          `json:"sale_date"`
	TotalAmount    decimal.Decimal    `json:"total_amount"`
	Details        []SaleLineResponse `json:"details"`
}
