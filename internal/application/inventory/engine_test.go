package inventory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bwcsoft/zapateria-api/internal/application/inventory"
	"github.com/bwcsoft/zapateria-api/internal/domain"
	"github.com/bwcsoft/zapateria-api/internal/domain/entity"
	"github.com/bwcsoft/zapateria-api/internal/domain/repository"
	"github.com/bwcsoft/zapateria-api/internal/testutil"
)

const (
	testProductID = "prod-000000000000000000000000000001"
	testBranchID  = "branch-0000000000000000000000000001"
	testUserID    = "user-00000000000000000000000000001"
)

func record(tipo entity.MovementType, qty int) inventory.MovementRecord {
	return inventory.MovementRecord{
		ProductID: testProductID,
		BranchID:  testBranchID,
		Type:      tipo,
		Quantity:  qty,
		UserID:    testUserID,
		At:        time.Now(),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación de entrada
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyMovements_SinLineas_EntradaInvalida(t *testing.T) {
	store := testutil.NewMemStore()
	err := inventory.ApplyMovementsInTx(store.MovementRepo(), store.StockRepo(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApplyMovements_TipoInvalido_EntradaInvalida(t *testing.T) {
	store := testutil.NewMemStore()
	rec := record("DEVOLUCION", 5)
	err := inventory.ApplyMovementsInTx(store.MovementRepo(), store.StockRepo(), []inventory.MovementRecord{rec})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApplyMovements_CantidadNoPositiva_EntradaInvalida(t *testing.T) {
	store := testutil.NewMemStore()
	for _, qty := range []int{0, -3} {
		rec := record(entity.MovementEntrada, qty)
		err := inventory.ApplyMovementsInTx(store.MovementRepo(), store.StockRepo(), []inventory.MovementRecord{rec})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %d debe rechazarse", qty)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Camino feliz: delta de stock y asiento del libro viajan juntos
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyMovements_EntradaCreaElParDesdeCero(t *testing.T) {
	store := testutil.NewMemStore()

	err := inventory.ApplyMovementsInTx(store.MovementRepo(), store.StockRepo(),
		[]inventory.MovementRecord{record(entity.MovementEntrada, 10)})
	require.NoError(t, err)

	stock, err := store.StockRepo().Get(testProductID, testBranchID)
	require.NoError(t, err)
	assert.Equal(t, 10, stock.Quantity, "la primera entrada debe crear la fila con la cantidad")

	movs, err := store.MovementRepo().ListRecent(10)
	require.NoError(t, err)
	require.Len(t, movs, 1, "exactamente un asiento por línea")
	assert.Equal(t, entity.MovementEntrada, movs[0].Type)
	assert.Equal(t, 10, movs[0].Quantity)
	assert.NotEmpty(t, movs[0].ID)
}

func TestApplyMovement_DevuelveCantidadResultante(t *testing.T) {
	store := testutil.NewMemStore()
	store.SeedStockViaEntrada(testProductID, testBranchID, 8, testUserID)

	qty, err := inventory.ApplyMovementInTx(store.MovementRepo(), store.StockRepo(),
		record(entity.MovementSalida, 3))
	require.NoError(t, err)
	assert.Equal(t, 5, qty)
}

func TestApplyMovements_VariasLineasMismoPar_TotalCorrido(t *testing.T) {
	store := testutil.NewMemStore()

	// entrada 10, salida 4, entrada 1 sobre el mismo par → 7
	err := inventory.ApplyMovementsInTx(store.MovementRepo(), store.StockRepo(),
		[]inventory.MovementRecord{
			record(entity.MovementEntrada, 10),
			record(entity.MovementSalida, 4),
			record(entity.MovementEntrada, 1),
		})
	require.NoError(t, err)

	stock, _ := store.StockRepo().Get(testProductID, testBranchID)
	assert.Equal(t, 7, stock.Quantity)

	movs, _ := store.MovementRepo().ListRecent(10)
	assert.Len(t, movs, 3, "un asiento por línea aunque el par se repita")
}

func TestApplyMovements_VariosPares(t *testing.T) {
	store := testutil.NewMemStore()
	otroProducto := "prod-000000000000000000000000000002"

	recs := []inventory.MovementRecord{
		record(entity.MovementEntrada, 5),
		{ProductID: otroProducto, BranchID: testBranchID, Type: entity.MovementEntrada,
			Quantity: 3, UserID: testUserID, At: time.Now()},
	}
	require.NoError(t, inventory.ApplyMovementsInTx(store.MovementRepo(), store.StockRepo(), recs))

	s1, _ := store.StockRepo().Get(testProductID, testBranchID)
	s2, _ := store.StockRepo().Get(otroProducto, testBranchID)
	assert.Equal(t, 5, s1.Quantity)
	assert.Equal(t, 3, s2.Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Guard de consistencia: validar todo antes de mutar cualquiera
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyMovements_SalidaSinStock_RechazaConDetalle(t *testing.T) {
	store := testutil.NewMemStore()
	store.SeedStockViaEntrada(testProductID, testBranchID, 5, testUserID)

	err := inventory.ApplyMovementsInTx(store.MovementRepo(), store.StockRepo(),
		[]inventory.MovementRecord{record(entity.MovementSalida, 8)})

	var shortage *inventory.StockShortageError
	require.ErrorAs(t, err, &shortage, "el rechazo debe nombrar producto y cantidades")
	assert.Equal(t, testProductID, shortage.ProductID)
	assert.Equal(t, testBranchID, shortage.BranchID)
	assert.Equal(t, 5, shortage.Available)
	assert.Equal(t, 8, shortage.Requested)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestApplyMovements_RechazoNoMutaNada(t *testing.T) {
	store := testutil.NewMemStore()
	store.SeedStockViaEntrada(testProductID, testBranchID, 5, testUserID)
	movsAntes, _ := store.MovementRepo().ListRecent(100)

	// Primera línea satisfacible, segunda no: nada debe persistirse
	err := inventory.ApplyMovementsInTx(store.MovementRepo(), store.StockRepo(),
		[]inventory.MovementRecord{
			record(entity.MovementSalida, 3),
			record(entity.MovementSalida, 10),
		})
	require.Error(t, err)

	stock, _ := store.StockRepo().Get(testProductID, testBranchID)
	assert.Equal(t, 5, stock.Quantity, "el stock no debe cambiar ante un rechazo")
	movsDespues, _ := store.MovementRepo().ListRecent(100)
	assert.Len(t, movsDespues, len(movsAntes), "el libro no debe crecer ante un rechazo")
}

func TestApplyMovements_TotalCorridoDetectaSobregiroAcumulado(t *testing.T) {
	store := testutil.NewMemStore()
	store.SeedStockViaEntrada(testProductID, testBranchID, 10, testUserID)

	// Cada línea cabe contra el stock inicial pero no contra el total corrido:
	// 10 - 6 = 4, luego 4 - 6 = -2 → rechazo con disponible 4
	err := inventory.ApplyMovementsInTx(store.MovementRepo(), store.StockRepo(),
		[]inventory.MovementRecord{
			record(entity.MovementSalida, 6),
			record(entity.MovementSalida, 6),
		})

	var shortage *inventory.StockShortageError
	require.ErrorAs(t, err, &shortage)
	assert.Equal(t, 4, shortage.Available, "el disponible reportado es el total corrido, no el inicial")
	assert.Equal(t, 6, shortage.Requested)

	stock, _ := store.StockRepo().Get(testProductID, testBranchID)
	assert.Equal(t, 10, stock.Quantity)
}

func TestApplyMovements_FalloEnUnPar_NoTocaLosOtros(t *testing.T) {
	store := testutil.NewMemStore()
	otroProducto := "prod-000000000000000000000000000002"

	recs := []inventory.MovementRecord{
		record(entity.MovementEntrada, 5), // par A: satisfacible
		{ProductID: otroProducto, BranchID: testBranchID, Type: entity.MovementSalida,
			Quantity: 1, UserID: testUserID, At: time.Now()}, // par B: sin stock
	}
	err := inventory.ApplyMovementsInTx(store.MovementRepo(), store.StockRepo(), recs)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// El par satisfacible tampoco debe haberse aplicado
	s1, _ := store.StockRepo().Get(testProductID, testBranchID)
	assert.Equal(t, 0, s1.Quantity)
	movs, _ := store.MovementRepo().ListRecent(10)
	assert.Empty(t, movs)
}

// ──────────────────────────────────────────────────────────────────────────────
// Materialización del par en la fase de bloqueo: sin fila no hay nada que
// bloquear, así que el primer movimiento de un par debe crearla en cero antes
// del FOR UPDATE
// ──────────────────────────────────────────────────────────────────────────────

func TestStockRepo_GetForUpdate_MaterializaElParEnCero(t *testing.T) {
	store := testutil.NewMemStore()

	stock, err := store.StockRepo().GetForUpdate(testProductID, testBranchID)
	require.NoError(t, err)
	assert.Equal(t, 0, stock.Quantity)

	// La fila existe desde el bloqueo, no recién desde el Upsert
	all, err := store.StockRepo().ListAll()
	require.NoError(t, err)
	require.Len(t, all, 1, "el bloqueo debe dejar la fila materializada")
	assert.Equal(t, 0, all[0].Quantity)
}

func TestEngine_RechazoEnParNuevo_DeshaceLaFilaMaterializada(t *testing.T) {
	store := testutil.NewMemStore()
	runner := store.Tx()

	// Salida sobre un par sin stock: el guard rechaza y el rollback deshace
	// también la fila en cero creada en la fase de bloqueo
	err := runner.Run(context.Background(), func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
	) error {
		return inventory.ApplyMovementsInTx(movRepo, stockRepo,
			[]inventory.MovementRecord{record(entity.MovementSalida, 1)})
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	all, _ := store.StockRepo().ListAll()
	assert.Empty(t, all, "el rollback no debe dejar filas de la fase de bloqueo")
}

func TestEngine_ComprasConcurrentesEnParNuevo_NoSePisan(t *testing.T) {
	store := testutil.NewMemStore()
	runner := store.Tx()

	// Dos entradas concurrentes sobre un par que aún no tiene fila: ninguna
	// debe sobrescribir a la otra; el resultado es la suma de ambas
	cantidades := []int{5, 3}
	var wg sync.WaitGroup
	for _, qty := range cantidades {
		wg.Add(1)
		go func(qty int) {
			defer wg.Done()
			err := runner.Run(context.Background(), func(
				movRepo repository.MovementRepository,
				stockRepo repository.StockRepository,
			) error {
				return inventory.ApplyMovementsInTx(movRepo, stockRepo,
					[]inventory.MovementRecord{record(entity.MovementEntrada, qty)})
			})
			if err != nil {
				t.Errorf("entrada de %d unidades: %v", qty, err)
			}
		}(qty)
	}
	wg.Wait()

	stock, _ := store.StockRepo().Get(testProductID, testBranchID)
	assert.Equal(t, 8, stock.Quantity, "ambas entradas deben acumularse")

	sums, err := store.MovementRepo().SumSignedByPair()
	require.NoError(t, err)
	require.Len(t, sums, 1)
	assert.Equal(t, stock.Quantity, sums[0].Quantity, "stock == suma firmada del libro")
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia: bajo ventas simultáneas el stock nunca queda negativo y el
// libro siempre suma exactamente el stock materializado
// ──────────────────────────────────────────────────────────────────────────────

func TestEngine_DosVentasConcurrentes_SoloUnaGana(t *testing.T) {
	store := testutil.NewMemStore()
	store.SeedStockViaEntrada(testProductID, testBranchID, 10, testUserID)
	runner := store.Tx()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = runner.Run(context.Background(), func(
				movRepo repository.MovementRepository,
				stockRepo repository.StockRepository,
			) error {
				return inventory.ApplyMovementsInTx(movRepo, stockRepo,
					[]inventory.MovementRecord{record(entity.MovementSalida, 6)})
			})
		}(i)
	}
	wg.Wait()

	// Con 10 unidades y dos salidas de 6, exactamente una debe ganar
	exitos := 0
	for _, err := range errs {
		if err == nil {
			exitos++
		} else {
			assert.ErrorIs(t, err, domain.ErrInsufficientStock)
		}
	}
	assert.Equal(t, 1, exitos, "exactamente una venta debe completarse")

	stock, _ := store.StockRepo().Get(testProductID, testBranchID)
	assert.Equal(t, 4, stock.Quantity)
}

func TestEngine_VentasConcurrentes_InvarianteLibroStock(t *testing.T) {
	store := testutil.NewMemStore()
	store.SeedStockViaEntrada(testProductID, testBranchID, 50, testUserID)
	runner := store.Tx()

	const vendedores = 20
	var wg sync.WaitGroup
	var mu sync.Mutex
	exitos := 0
	for i := 0; i < vendedores; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := runner.Run(context.Background(), func(
				movRepo repository.MovementRepository,
				stockRepo repository.StockRepository,
			) error {
				return inventory.ApplyMovementsInTx(movRepo, stockRepo,
					[]inventory.MovementRecord{record(entity.MovementSalida, 5)})
			})
			if err == nil {
				mu.Lock()
				exitos++
				mu.Unlock()
			} else if !errors.Is(err, domain.ErrInsufficientStock) {
				t.Errorf("error inesperado: %v", err)
			}
		}()
	}
	wg.Wait()

	// 50 unidades / 5 por venta → exactamente 10 ventas caben
	assert.Equal(t, 10, exitos)

	stock, _ := store.StockRepo().Get(testProductID, testBranchID)
	assert.Equal(t, 50-5*exitos, stock.Quantity)
	assert.GreaterOrEqual(t, stock.Quantity, 0, "el stock nunca queda negativo")

	// Invariante central: stock materializado == suma firmada del libro
	sums, err := store.MovementRepo().SumSignedByPair()
	require.NoError(t, err)
	require.Len(t, sums, 1)
	assert.Equal(t, stock.Quantity, sums[0].Quantity)
}
