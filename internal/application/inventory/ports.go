package inventory

import (
	"context"

	"github.com/bwcsoft/zapateria-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Es la unidad atómica del motor de inventario:
// o se aplican todas las mutaciones de stock y todos los asientos del libro,
// o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
	) error) error
}
