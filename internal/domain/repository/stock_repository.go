package repository

import "github.com/bwcsoft/zapateria-api/internal/domain/entity"

// StockRepository puerto para consultar/actualizar stock por producto+sucursal.
// Get devuelve una entrada en cero si no existe fila, sin crearla como efecto
// de la lectura.
type StockRepository interface {
	Get(productID, branchID string) (*entity.Stock, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE); usado por la
	// secuencia validar-luego-mutar dentro de la transacción. Si el par no tiene
	// fila la materializa en cero primero, para que el bloqueo exista: sin fila
	// no hay nada que bloquear y dos transacciones leerían ambas cero.
	GetForUpdate(productID, branchID string) (*entity.Stock, error)
	Upsert(stock *entity.Stock) error
	ListByBranch(branchID string) ([]*entity.Stock, error)
	ListByProduct(productID string) ([]*entity.Stock, error)
	// ListBelowOrEqual entradas con cantidad <= threshold (alertas de bajo stock).
	ListBelowOrEqual(threshold int) ([]*entity.Stock, error)
	ListAll() ([]*entity.Stock, error)
}
