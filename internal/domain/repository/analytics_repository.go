package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DaySales total vendido en un día calendario.
type DaySales struct {
	Day    time.Time
	Amount decimal.Decimal
}

// LowStockProduct producto con stock agregado entre sucursales bajo el umbral.
type LowStockProduct struct {
	ProductID   string
	ProductName string
	Quantity    int
}

// AnalyticsRepository consultas de solo lectura para el dashboard. No muta
// stock ni libro; consume las mismas tablas que el núcleo.
type AnalyticsRepository interface {
	// TotalSales suma de TotalAmount de todas las ventas.
	TotalSales(ctx context.Context) (decimal.Decimal, error)
	// SalesByDay ventas agrupadas por día dentro del rango [from, to].
	SalesByDay(ctx context.Context, from, to time.Time) ([]DaySales, error)
	// LowStockProducts productos cuya suma de stock entre sucursales es <= threshold.
	LowStockProducts(ctx context.Context, threshold int) ([]LowStockProduct, error)
}
