package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase compra a proveedor (entrada de stock). El agregado y sus líneas son
// inmutables una vez persistidos; la eliminación externa no revierte stock.
type Purchase struct {
	ID               string
	SupplierID       string
	UserID           string
	BranchID         string
	DocumentStatusID string
	PaymentStatusID  string
	PurchaseDate     time.Time
	TotalAmount      decimal.Decimal
	CreatedAt        time.Time
}

// PurchaseDetail línea de compra: cantidad positiva y precios por unidad.
type PurchaseDetail struct {
	ID         string
	PurchaseID string
	ProductID  string
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}
