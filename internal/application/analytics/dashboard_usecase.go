// Package analytics contiene el lector de agregación para el dashboard:
// consumidor de solo lectura del stock y del libro de movimientos, sin
// mutaciones ni invariantes propias que proteger.
package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/bwcsoft/zapateria-api/internal/application/dto"
	"github.com/bwcsoft/zapateria-api/internal/application/inventory"
	"github.com/bwcsoft/zapateria-api/internal/domain/repository"
)

const (
	lowStockThreshold = 10 // umbral del widget de bajo stock
	recentMovements   = 5  // movimientos recientes del dashboard
)

// nombres de día en español para la gráfica semanal
var spanishDays = map[time.Weekday]string{
	time.Monday:    "lunes",
	time.Tuesday:   "martes",
	time.Wednesday: "miércoles",
	time.Thursday:  "jueves",
	time.Friday:    "viernes",
	time.Saturday:  "sábado",
	time.Sunday:    "domingo",
}

// DashboardUseCase arma las estadísticas del dashboard: total vendido,
// productos con bajo stock, últimos movimientos y ventas de los últimos 7 días.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	inventoryQ    *inventory.QueryUseCase
	titleCaser    cases.Caser
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, inventoryQ *inventory.QueryUseCase) *DashboardUseCase {
	return &DashboardUseCase{
		analyticsRepo: analyticsRepo,
		inventoryQ:    inventoryQ,
		titleCaser:    cases.Title(language.Spanish),
	}
}

// GetStats construye el DashboardStatsResponse. Las cuatro consultas son
// independientes y se paralelizan con goroutines.
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	type totalResult struct {
		total decimal.Decimal
		err   error
	}
	type lowStockResult struct {
		products []repository.LowStockProduct
		err      error
	}
	type movementsResult struct {
		movements []dto.MovementResponse
		err       error
	}
	type weeklyResult struct {
		days []repository.DaySales
		err  error
	}

	totalCh := make(chan totalResult, 1)
	lowCh := make(chan lowStockResult, 1)
	movCh := make(chan movementsResult, 1)
	weekCh := make(chan weeklyResult, 1)

	now := time.Now()
	todayEnd := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		Add(24*time.Hour - time.Nanosecond)
	weekStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -6) // últimos 7 días incluyendo hoy

	go func() {
		total, err := uc.analyticsRepo.TotalSales(ctx)
		totalCh <- totalResult{total, err}
	}()
	go func() {
		products, err := uc.analyticsRepo.LowStockProducts(ctx, lowStockThreshold)
		lowCh <- lowStockResult{products, err}
	}()
	go func() {
		movements, err := uc.inventoryQ.ListRecentMovements(ctx, recentMovements)
		movCh <- movementsResult{movements, err}
	}()
	go func() {
		days, err := uc.analyticsRepo.SalesByDay(ctx, weekStart, todayEnd)
		weekCh <- weeklyResult{days, err}
	}()

	total := <-totalCh
	low := <-lowCh
	mov := <-movCh
	week := <-weekCh

	for _, err := range []error{total.err, low.err, mov.err, week.err} {
		if err != nil {
			return nil, err
		}
	}

	lowStock := make([]dto.LowStockProductDTO, 0, len(low.products))
	for _, p := range low.products {
		lowStock = append(lowStock, dto.LowStockProductDTO{
			ProductID:   p.ProductID,
			ProductName: p.ProductName,
			Stock:       p.Quantity,
		})
	}

	return &dto.DashboardStatsResponse{
		TotalSales:       total.total,
		LowStockProducts: lowStock,
		RecentMovements:  mov.movements,
		WeeklySales:      uc.buildWeeklyChart(weekStart, week.days),
	}, nil
}

// buildWeeklyChart inicializa los 7 días en cero y acumula los totales por
// día; el nombre del día va en español con la primera letra en mayúscula.
func (uc *DashboardUseCase) buildWeeklyChart(weekStart time.Time, days []repository.DaySales) []dto.SalesChartData {
	byDay := make(map[string]decimal.Decimal, 7)
	for _, d := range days {
		key := d.Day.Format("2006-01-02")
		byDay[key] = byDay[key].Add(d.Amount)
	}
	chart := make([]dto.SalesChartData, 0, 7)
	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		amount := byDay[day.Format("2006-01-02")]
		chart = append(chart, dto.SalesChartData{
			Day:    uc.titleCaser.String(spanishDays[day.Weekday()]),
			Amount: amount.Round(2),
		})
	}
	return chart
}
