package dto

import "github.com/shopspring/decimal"

// SalesChartData punto de la gráfica semanal de ventas (día en español).
type SalesChartData struct {
	Day    string          `json:"day"`
	Amount decimal.Decimal `json:"amount"`
}

// LowStockProductDTO producto con stock agregado bajo el umbral.
type LowStockProductDTO struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Stock       int    `json:"stock"`
}

// DashboardStatsResponse resumen del dashboard: total vendido, bajo stock,
// últimos movimientos y ventas de los últimos 7 días.
type DashboardStatsResponse struct {
	TotalSales       decimal.Decimal      `json:"total_sales"`
	LowStockProducts []LowStockProductDTO `json:"low_stock_products"`
	RecentMovements  []MovementResponse   `json:"recent_movements"`
	WeeklySales      []SalesChartData     `json:"weekly_sales"`
}
