package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bwcsoft/zapateria-api/internal/domain/entity"
	"github.com/bwcsoft/zapateria-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el stock actual de un producto en una sucursal. Si no existe
// fila devuelve una entrada en cero sin crearla.
func (r *StockRepo) Get(productID, branchID string) (*entity.Stock, error) {
	query := `
		SELECT product_id, branch_id, quantity, updated_at
		FROM stock WHERE product_id = $1 AND branch_id = $2`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, productID, branchID).Scan(
		&s.ProductID, &s.BranchID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{ProductID: productID, BranchID: branchID, Quantity: 0}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// GetForUpdate obtiene el stock y bloquea la fila para update (SELECT FOR UPDATE).
// Si el par no tiene fila todavía, la materializa en cero antes de bloquear:
// FOR UPDATE sobre una fila inexistente no bloquea nada, y dos transacciones
// concurrentes sobre un par nuevo leerían ambas cero y se pisarían entre sí.
// El INSERT vive dentro de la transacción del caller: un rollback lo deshace.
func (r *StockRepo) GetForUpdate(productID, branchID string) (*entity.Stock, error) {
	ctx := context.Background()
	materialize := `
		INSERT INTO stock (product_id, branch_id, quantity, updated_at)
		VALUES ($1, $2, 0, now())
		ON CONFLICT (product_id, branch_id) DO NOTHING`
	if _, err := r.q.Exec(ctx, materialize, productID, branchID); err != nil {
		return nil, fmt.Errorf("materialize stock row: %w", err)
	}
	query := `
		SELECT product_id, branch_id, quantity, updated_at
		FROM stock WHERE product_id = $1 AND branch_id = $2
		FOR UPDATE`
	var s entity.Stock
	err := r.q.QueryRow(ctx, query, productID, branchID).Scan(
		&s.ProductID, &s.BranchID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la cantidad en stock (por producto y sucursal).
func (r *StockRepo) Upsert(stock *entity.Stock) error {
	query := `
		INSERT INTO stock (product_id, branch_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (product_id, branch_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, stock.ProductID, stock.BranchID, stock.Quantity)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// ListByBranch lista el stock de una sucursal.
func (r *StockRepo) ListByBranch(branchID string) ([]*entity.Stock, error) {
	query := `
		SELECT product_id, branch_id, quantity, updated_at
		FROM stock WHERE branch_id = $1
		ORDER BY product_id`
	return r.list(query, branchID)
}

// ListByProduct lista el stock de un producto en todas las sucursales.
func (r *StockRepo) ListByProduct(productID string) ([]*entity.Stock, error) {
	query := `
		SELECT product_id, branch_id, quantity, updated_at
		FROM stock WHERE product_id = $1
		ORDER BY branch_id`
	return r.list(query, productID)
}

// ListBelowOrEqual lista entradas con cantidad <= threshold (bajo stock).
func (r *StockRepo) ListBelowOrEqual(threshold int) ([]*entity.Stock, error) {
	query := `
		SELECT product_id, branch_id, quantity, updated_at
		FROM stock WHERE quantity <= $1
		ORDER BY quantity ASC, product_id`
	return r.list(query, threshold)
}

// ListAll lista todas las entradas de stock.
func (r *StockRepo) ListAll() ([]*entity.Stock, error) {
	query := `
		SELECT product_id, branch_id, quantity, updated_at
		FROM stock
		ORDER BY product_id, branch_id`
	return r.list(query)
}

func (r *StockRepo) list(query string, args ...any) ([]*entity.Stock, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.ProductID, &s.BranchID, &s.Quantity, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
