package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bwcsoft/zapateria-api/internal/application/inventory"
	"github.com/bwcsoft/zapateria-api/internal/application/purchasing"
	"github.com/bwcsoft/zapateria-api/internal/application/sales"
	"github.com/bwcsoft/zapateria-api/internal/domain/repository"
)

var (
	_ inventory.TxRunner          = (*TxRunner)(nil)
	_ purchasing.PurchaseTxRunner = (*TxRunner)(nil)
	_ sales.SaleTxRunner          = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Todo el
// bloque validar-luego-mutar corre bajo el mismo Begin/Commit; cualquier error
// del callback produce Rollback completo.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewMovementRepository(tx), NewStockRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunPurchase inicia una transacción con repos de inventario y compras (para CreatePurchase).
func (r *TxRunner) RunPurchase(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
	purchaseRepo repository.PurchaseRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewMovementRepository(tx), NewStockRepository(tx), NewPurchaseRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunSale inicia una transacción con repos de inventario y ventas (para CreateSale).
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
	saleRepo repository.SaleRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewMovementRepository(tx), NewStockRepository(tx), NewSaleRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
