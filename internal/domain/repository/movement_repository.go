package repository

import "github.com/bwcsoft/zapateria-api/internal/domain/entity"

// StockSum suma firmada de movimientos para un par (producto, sucursal);
// resultado de la reconstrucción del stock desde el libro.
type StockSum struct {
	ProductID string
	BranchID  string
	Quantity  int
}

// MovementRepository puerto del libro de movimientos. Append-only: la interfaz
// no expone actualización ni borrado y esa es su garantía central.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	// ListRecent movimientos más recientes por fecha descendente; empates por
	// orden de inserción (el último insertado primero).
	ListRecent(limit int) ([]*entity.Movement, error)
	ListByProduct(productID string, limit, offset int) ([]*entity.Movement, error)
	ListByBranch(branchID string, limit, offset int) ([]*entity.Movement, error)
	// SumSignedByPair reconstruye la cantidad por par sumando magnitudes con el
	// signo de cada tipo; base de la reconciliación contra el stock materializado.
	SumSignedByPair() ([]StockSum, error)
}
