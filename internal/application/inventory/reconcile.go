package inventory

import (
	"context"
	"sort"

	"github.com/bwcsoft/zapateria-api/internal/application/dto"
	"github.com/bwcsoft/zapateria-api/internal/domain/repository"
)

// ReconcileUseCase reconstruye las cantidades puramente desde el libro de
// movimientos y las compara contra el stock materializado. La invariante:
// para todo par, stock.Quantity == Σ(cantidades firmadas del libro).
type ReconcileUseCase struct {
	stockRepo repository.StockRepository
	movRepo   repository.MovementRepository
}

// NewReconcileUseCase construye el caso de uso.
func NewReconcileUseCase(stockRepo repository.StockRepository, movRepo repository.MovementRepository) *ReconcileUseCase {
	return &ReconcileUseCase{stockRepo: stockRepo, movRepo: movRepo}
}

// Reconcile compara ambas vistas y reporta discrepancias. Un par presente en
// el libro pero sin fila de stock cuenta como almacenado 0, y viceversa.
func (uc *ReconcileUseCase) Reconcile(ctx context.Context) (*dto.ReconciliationResponse, error) {
	sums, err := uc.movRepo.SumSignedByPair()
	if err != nil {
		return nil, err
	}
	stored, err := uc.stockRepo.ListAll()
	if err != nil {
		return nil, err
	}

	ledger := make(map[pairKey]int, len(sums))
	for _, s := range sums {
		ledger[pairKey{s.ProductID, s.BranchID}] = s.Quantity
	}
	store := make(map[pairKey]int, len(stored))
	for _, s := range stored {
		store[pairKey{s.ProductID, s.BranchID}] = s.Quantity
	}

	all := make(map[pairKey]bool, len(ledger)+len(store))
	for k := range ledger {
		all[k] = true
	}
	for k := range store {
		all[k] = true
	}

	var discrepancies []dto.StockDiscrepancy
	for k := range all {
		if store[k] != ledger[k] {
			discrepancies = append(discrepancies, dto.StockDiscrepancy{
				ProductID:      k.productID,
				BranchID:       k.branchID,
				StoredQuantity: store[k],
				LedgerQuantity: ledger[k],
			})
		}
	}
	sort.Slice(discrepancies, func(i, j int) bool {
		if discrepancies[i].ProductID != discrepancies[j].ProductID {
			return discrepancies[i].ProductID < discrepancies[j].ProductID
		}
		return discrepancies[i].BranchID < discrepancies[j].BranchID
	})

	return &dto.ReconciliationResponse{
		Consistent:    len(discrepancies) == 0,
		PairsChecked:  len(all),
		Discrepancies: discrepancies,
	}, nil
}
