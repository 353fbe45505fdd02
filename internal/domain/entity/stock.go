package entity

import "time"

// Stock cantidad actual de un producto en una sucursal (vista materializada del
// libro de movimientos, única por producto+sucursal). Se crea perezosamente con
// el primer movimiento del par y nunca baja de cero.
type Stock struct {
	ProductID string
	BranchID  string
	Quantity  int
	UpdatedAt time.Time
}
