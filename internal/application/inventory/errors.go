package inventory

import (
	"fmt"

	"github.com/bwcsoft/zapateria-api/internal/domain"
)

// StockShortageError rechazo del guard de consistencia: nombra el producto
// ofensor y las cantidades disponible vs. solicitada. Envuelve
// domain.ErrInsufficientStock para que los handlers lo mapeen a 409.
type StockShortageError struct {
	ProductID string
	BranchID  string
	Available int
	Requested int
}

func (e *StockShortageError) Error() string {
	return fmt.Sprintf("stock insuficiente para producto %s en sucursal %s: disponible %d, solicitado %d",
		e.ProductID, e.BranchID, e.Available, e.Requested)
}

func (e *StockShortageError) Unwrap() error {
	return domain.ErrInsufficientStock
}
