package inventory

import (
	"context"

	"github.com/bwcsoft/zapateria-api/internal/application/dto"
	"github.com/bwcsoft/zapateria-api/internal/domain/entity"
	"github.com/bwcsoft/zapateria-api/internal/domain/repository"
)

// QueryUseCase consultas de solo lectura sobre stock y libro de movimientos.
// Opera contra el pool (fuera de transacción): leer no crea filas ni bloquea.
type QueryUseCase struct {
	stockRepo   repository.StockRepository
	movRepo     repository.MovementRepository
	productRepo repository.ProductRepository
	branchRepo  repository.BranchRepository
}

// NewQueryUseCase construye el caso de uso de consultas.
func NewQueryUseCase(
	stockRepo repository.StockRepository,
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	branchRepo repository.BranchRepository,
) *QueryUseCase {
	return &QueryUseCase{
		stockRepo:   stockRepo,
		movRepo:     movRepo,
		productRepo: productRepo,
		branchRepo:  branchRepo,
	}
}

// GetStock cantidad actual de un producto en una sucursal; 0 si el par no
// tiene entrada todavía (no es error, y la lectura no crea la fila).
func (uc *QueryUseCase) GetStock(ctx context.Context, productID, branchID string) (*dto.StockResponse, error) {
	stock, err := uc.stockRepo.Get(productID, branchID)
	if err != nil {
		return nil, err
	}
	resp := uc.toStockResponse(stock)
	return &resp, nil
}

// ListStockByBranch stock de todos los productos de una sucursal.
func (uc *QueryUseCase) ListStockByBranch(ctx context.Context, branchID string) ([]dto.StockResponse, error) {
	list, err := uc.stockRepo.ListByBranch(branchID)
	if err != nil {
		return nil, err
	}
	return uc.toStockResponses(list), nil
}

// ListStockByProduct stock de un producto en todas las sucursales.
func (uc *QueryUseCase) ListStockByProduct(ctx context.Context, productID string) ([]dto.StockResponse, error) {
	list, err := uc.stockRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	return uc.toStockResponses(list), nil
}

// ListLowStock entradas con cantidad <= threshold.
func (uc *QueryUseCase) ListLowStock(ctx context.Context, threshold int) ([]dto.StockResponse, error) {
	if threshold < 0 {
		threshold = 0
	}
	list, err := uc.stockRepo.ListBelowOrEqual(threshold)
	if err != nil {
		return nil, err
	}
	return uc.toStockResponses(list), nil
}

// ListRecentMovements los `limit` movimientos más recientes del libro.
func (uc *QueryUseCase) ListRecentMovements(ctx context.Context, limit int) ([]dto.MovementResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	movements, err := uc.movRepo.ListRecent(limit)
	if err != nil {
		return nil, err
	}
	return uc.toMovementResponses(movements), nil
}

// ListMovementsByProduct historial de un producto (auditoría).
func (uc *QueryUseCase) ListMovementsByProduct(ctx context.Context, productID string, limit, offset int) ([]dto.MovementResponse, error) {
	movements, err := uc.movRepo.ListByProduct(productID, limit, offset)
	if err != nil {
		return nil, err
	}
	return uc.toMovementResponses(movements), nil
}

// ListMovementsByBranch historial de una sucursal (auditoría).
func (uc *QueryUseCase) ListMovementsByBranch(ctx context.Context, branchID string, limit, offset int) ([]dto.MovementResponse, error) {
	movements, err := uc.movRepo.ListByBranch(branchID, limit, offset)
	if err != nil {
		return nil, err
	}
	return uc.toMovementResponses(movements), nil
}

func (uc *QueryUseCase) toStockResponse(s *entity.Stock) dto.StockResponse {
	resp := dto.StockResponse{
		ProductID: s.ProductID,
		BranchID:  s.BranchID,
		Quantity:  s.Quantity,
		UpdatedAt: s.UpdatedAt,
	}
	if p, err := uc.productRepo.GetByID(s.ProductID); err == nil && p != nil {
		resp.ProductName = p.Name
	}
	if b, err := uc.branchRepo.GetByID(s.BranchID); err == nil && b != nil {
		resp.BranchName = b.Name
	}
	return resp
}

func (uc *QueryUseCase) toStockResponses(list []*entity.Stock) []dto.StockResponse {
	out := make([]dto.StockResponse, 0, len(list))
	for _, s := range list {
		out = append(out, uc.toStockResponse(s))
	}
	return out
}

func (uc *QueryUseCase) toMovementResponses(movements []*entity.Movement) []dto.MovementResponse {
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		resp := dto.MovementResponse{
			ID:           m.ID,
			ProductID:    m.ProductID,
			BranchID:     m.BranchID,
			Type:         string(m.Type),
			Quantity:     m.Quantity,
			MovementDate: m.MovementDate,
			UserID:       m.UserID,
			Description:  m.Description,
			OriginRef:    m.OriginRef,
		}
		if p, err := uc.productRepo.GetByID(m.ProductID); err == nil && p != nil {
			resp.ProductName = p.Name
		}
		if b, err := uc.branchRepo.GetByID(m.BranchID); err == nil && b != nil {
			resp.BranchName = b.Name
		}
		out = append(out, resp)
	}
	return out
}
