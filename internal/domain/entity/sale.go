package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale venta a cliente (salida de stock). Inmutable una vez persistida.
type Sale struct {
	ID               string
	CustomerID       string
	UserID           string
	BranchID         string
	DocumentStatusID string
	SaleDate         time.Time
	TotalAmount      decimal.Decimal
	CreatedAt        time.Time
}

// SaleDetail línea de venta.
type SaleDetail struct {
	ID         string
	SaleID     string
	ProductID  string
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}
