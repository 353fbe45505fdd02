package purchasing

import (
	"context"

	"github.com/bwcsoft/zapateria-api/internal/domain/repository"
)

// PurchaseTxRunner ejecuta una función dentro de una transacción que incluye
// los repos del motor de inventario más el de compras: el agregado, los deltas
// de stock y los asientos del libro forman una sola unidad atómica.
type PurchaseTxRunner interface {
	RunPurchase(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
		purchaseRepo repository.PurchaseRepository,
	) error) error
}
