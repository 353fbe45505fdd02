package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bwcsoft/zapateria-api/internal/application/inventory"
	"github.com/bwcsoft/zapateria-api/internal/domain/entity"
	"github.com/bwcsoft/zapateria-api/internal/testutil"
)

// ──────────────────────────────────────────────────────────────────────────────
// Reconciliación: reconstruir cantidades desde el libro y compararlas contra
// el stock materializado
// ──────────────────────────────────────────────────────────────────────────────

func TestReconcile_TrasOperacionesNormales_Consistente(t *testing.T) {
	store := testutil.NewMemStore()
	store.SeedStockViaEntrada(testProductID, testBranchID, 10, testUserID)

	require.NoError(t, inventory.ApplyMovementsInTx(store.MovementRepo(), store.StockRepo(),
		[]inventory.MovementRecord{
			record(entity.MovementSalida, 4),
			record(entity.MovementAjustePositivo, 2),
		}))

	uc := inventory.NewReconcileUseCase(store.StockRepo(), store.MovementRepo())
	resp, err := uc.Reconcile(context.Background())
	require.NoError(t, err)

	assert.True(t, resp.Consistent)
	assert.Equal(t, 1, resp.PairsChecked)
	assert.Empty(t, resp.Discrepancies)
}

func TestReconcile_StockCorrupto_ReportaDiscrepancia(t *testing.T) {
	store := testutil.NewMemStore()
	store.SeedStockViaEntrada(testProductID, testBranchID, 10, testUserID)

	// Corromper el stock materializado sin asiento en el libro
	require.NoError(t, store.StockRepo().Upsert(&entity.Stock{
		ProductID: testProductID,
		BranchID:  testBranchID,
		Quantity:  15,
		UpdatedAt: time.Now(),
	}))

	uc := inventory.NewReconcileUseCase(store.StockRepo(), store.MovementRepo())
	resp, err := uc.Reconcile(context.Background())
	require.NoError(t, err)

	assert.False(t, resp.Consistent)
	require.Len(t, resp.Discrepancies, 1)
	d := resp.Discrepancies[0]
	assert.Equal(t, testProductID, d.ProductID)
	assert.Equal(t, testBranchID, d.BranchID)
	assert.Equal(t, 15, d.StoredQuantity)
	assert.Equal(t, 10, d.LedgerQuantity)
}

func TestReconcile_FilaDeStockSinLibro_CuentaComoCeroEnElLibro(t *testing.T) {
	store := testutil.NewMemStore()

	// Fila de stock huérfana: ningún movimiento la respalda
	require.NoError(t, store.StockRepo().Upsert(&entity.Stock{
		ProductID: testProductID,
		BranchID:  testBranchID,
		Quantity:  3,
	}))

	uc := inventory.NewReconcileUseCase(store.StockRepo(), store.MovementRepo())
	resp, err := uc.Reconcile(context.Background())
	require.NoError(t, err)

	assert.False(t, resp.Consistent)
	require.Len(t, resp.Discrepancies, 1)
	assert.Equal(t, 3, resp.Discrepancies[0].StoredQuantity)
	assert.Equal(t, 0, resp.Discrepancies[0].LedgerQuantity)
}

func TestReconcile_SinDatos_ConsistenteVacio(t *testing.T) {
	store := testutil.NewMemStore()
	uc := inventory.NewReconcileUseCase(store.StockRepo(), store.MovementRepo())

	resp, err := uc.Reconcile(context.Background())
	require.NoError(t, err)
	assert.True(t, resp.Consistent)
	assert.Zero(t, resp.PairsChecked)
}

func TestReconcile_DiscrepanciasOrdenadasPorPar(t *testing.T) {
	store := testutil.NewMemStore()
	pares := []struct{ producto, sucursal string }{
		{"prod-b", "branch-1"},
		{"prod-a", "branch-2"},
		{"prod-a", "branch-1"},
	}
	for _, p := range pares {
		require.NoError(t, store.StockRepo().Upsert(&entity.Stock{
			ProductID: p.producto, BranchID: p.sucursal, Quantity: 1,
		}))
	}

	uc := inventory.NewReconcileUseCase(store.StockRepo(), store.MovementRepo())
	resp, err := uc.Reconcile(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Discrepancies, 3)

	assert.Equal(t, "prod-a", resp.Discrepancies[0].ProductID)
	assert.Equal(t, "branch-1", resp.Discrepancies[0].BranchID)
	assert.Equal(t, "prod-a", resp.Discrepancies[1].ProductID)
	assert.Equal(t, "branch-2", resp.Discrepancies[1].BranchID)
	assert.Equal(t, "prod-b", resp.Discrepancies[2].ProductID)
}
