package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/bwcsoft/zapateria-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard. Lee las mismas
// tablas que el núcleo pero nunca las muta.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// TotalSales suma de total_amount de todas las ventas.
func (r *AnalyticsRepo) TotalSales(ctx context.Context) (decimal.Decimal, error) {
	const query = `SELECT COALESCE(SUM(total_amount), 0) FROM sales`
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx, query).Scan(&total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("analytics.TotalSales: %w", err)
	}
	return total, nil
}

// SalesByDay agrupa el total vendido por día calendario dentro del rango [from, to].
func (r *AnalyticsRepo) SalesByDay(ctx context.Context, from, to time.Time) ([]repository.DaySales, error) {
	const query = `
		SELECT date_trunc('day', sale_date) AS day,
		       COALESCE(SUM(total_amount), 0) AS amount
		FROM sales
		WHERE sale_date BETWEEN $1 AND $2
		GROUP BY day
		ORDER BY day`
	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("analytics.SalesByDay: %w", err)
	}
	defer rows.Close()

	var results []repository.DaySales
	for rows.Next() {
		var row repository.DaySales
		if err := rows.Scan(&row.Day, &row.Amount); err != nil {
			return nil, fmt.Errorf("analytics.SalesByDay scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// LowStockProducts productos cuya suma de stock entre sucursales es <= threshold.
func (r *AnalyticsRepo) LowStockProducts(ctx context.Context, threshold int) ([]repository.LowStockProduct, error) {
	const query = `
		SELECT p.id, p.name, COALESCE(SUM(s.quantity), 0)::bigint AS total
		FROM products p
		LEFT JOIN stock s ON s.product_id = p.id
		GROUP BY p.id, p.name
		HAVING COALESCE(SUM(s.quantity), 0) <= $1
		ORDER BY total ASC, p.name`
	rows, err := r.pool.Query(ctx, query, threshold)
	if err != nil {
		return nil, fmt.Errorf("analytics.LowStockProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.LowStockProduct
	for rows.Next() {
		var row repository.LowStockProduct
		var total int64
		if err := rows.Scan(&row.ProductID, &row.ProductName, &total); err != nil {
			return nil, fmt.Errorf("analytics.LowStockProducts scan: %w", err)
		}
		row.Quantity = int(total)
		results = append(results, row)
	}
	return results, rows.Err()
}
