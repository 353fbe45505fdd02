package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseLineRequest línea de compra del request.
type PurchaseLineRequest struct {
	ProductID  string          `json:"product_id" validate:"required"`
	Quantity   int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// CreatePurchaseRequest body para POST /api/purchases. El proveedor llega por
// ID existente o inline (supplier_name + supplier_email); los estados de
// documento y pago son opcionales y por defecto quedan en PENDIENTE.
type CreatePurchaseRequest struct {
	SupplierID      string `json:"supplier_id,omitempty"`
	SupplierName    string `json:"supplier_name,omitempty"`
	SupplierContact string `json:"supplier_contact,omitempty"`
	SupplierPhone   string `json:"supplier_phone,omitempty"`
	SupplierEmail   string `json:"supplier_email,omitempty"`

	BranchID         string `json:"branch_id" validate:"required"`
	UserID           string `json:"user_id" validate:"required"`
	DocumentStatusID string `json:"document_status_id,omitempty"`
	PaymentStatusID  string `json:"payment_status_id,omitempty"`

	PurchaseDate *time.Time            `json:"purchase_date,omitempty"`
	Details      []PurchaseLineRequest `json:"details" validate:"required,min=1,dive"`
}

// SupplierInfo proveedor resuelto para mostrar.
type SupplierInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ContactName string `json:"contact_name,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
}

// BranchInfo sucursal resuelta para mostrar.
type BranchInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// StatusInfo estado resuelto para mostrar.
type StatusInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PurchaseLineResponse línea persistida.
type PurchaseLineResponse struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"product_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// PurchaseResponse compra persistida con referencias resueltas.
type PurchaseResponse struct {
	ID             string                 `json:"id"`
	Supplier       SupplierInfo           `json:"supplier"`
	Branch         BranchInfo             `json:"branch"`
	UserID         string                 `json:"user_id"`
	DocumentStatus StatusInfo             `json:"document_status"`
	PaymentStatus  StatusInfo             `json:"payment_status"`
	PurchaseDate   time.Time              `json:"purchase_date"`
	TotalAmount    decimal.Decimal        `json:"total_amount"`
	Details        []PurchaseLineResponse `json:"details"`
}
