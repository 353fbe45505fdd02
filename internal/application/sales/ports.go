package sales

import (
	"context"

	"github.com/bwcsoft/zapateria-api/internal/domain/repository"
)

// SaleTxRunner ejecuta una función dentro de una transacción que incluye los
// repos del motor de inventario más el de ventas: guard de consistencia,
// agregado, deltas de stock y asientos del libro en una sola unidad atómica.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
		saleRepo repository.SaleRepository,
	) error) error
}
