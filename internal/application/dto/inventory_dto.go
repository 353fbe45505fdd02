package dto

import "time"

// RegisterMovementRequest body para POST /api/inventory/movements.
// Para ajustes: product_id, branch_id, type (AJUSTE_POSITIVO | AJUSTE_NEGATIVO), quantity.
// Para traslados: product_id, from_branch_id, to_branch_id, type=TRANSFERENCIA, quantity.
type RegisterMovementRequest struct {
	ProductID    string `json:"product_id" validate:"required"`
	BranchID     string `json:"branch_id,omitempty"`
	FromBranchID string `json:"from_branch_id,omitempty"`
	ToBranchID   string `json:"to_branch_id,omitempty"`
	Type         string `json:"type" validate:"required"`
	Quantity     int    `json:"quantity" validate:"required,gt=0"`
	Description  string `json:"description,omitempty"`
}

// MovementResponse movimiento del libro para mostrar.
type MovementResponse struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	ProductName  string    `json:"product_name,omitempty"`
	BranchID     string    `json:"branch_id"`
	BranchName   string    `json:"branch_name,omitempty"`
	Type         string    `json:"type"`
	Quantity     int       `json:"quantity"`
	MovementDate time.Time `json:"movement_date"`
	UserID       string    `json:"user_id"`
	Description  string    `json:"description,omitempty"`
	OriginRef    string    `json:"origin_ref,omitempty"`
}

// StockResponse entrada de stock para mostrar.
type StockResponse struct {
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name,omitempty"`
	BranchID    string    `json:"branch_id"`
	BranchName  string    `json:"branch_name,omitempty"`
	Quantity    int       `json:"quantity"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

// StockDiscrepancy diferencia entre el stock materializado y la suma del libro
// para un par (producto, sucursal); lista vacía = reconciliación limpia.
type StockDiscrepancy struct {
	ProductID      string `json:"product_id"`
	BranchID       string `json:"branch_id"`
	StoredQuantity int    `json:"stored_quantity"`
	LedgerQuantity int    `json:"ledger_quantity"`
}

// ReconciliationResponse resultado de reconstruir el stock desde el libro.
type ReconciliationResponse struct {
	Consistent    bool               `json:"consistent"`
	PairsChecked  int                `json:"pairs_checked"`
	Discrepancies []StockDiscrepancy `json:"discrepancies"`
}
