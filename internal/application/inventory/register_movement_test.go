package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bwcsoft/zapateria-api/internal/application/dto"
	"github.com/bwcsoft/zapateria-api/internal/application/inventory"
	"github.com/bwcsoft/zapateria-api/internal/domain"
	"github.com/bwcsoft/zapateria-api/internal/domain/entity"
	"github.com/bwcsoft/zapateria-api/internal/testutil"
)

func newRegisterMovementUC(store *testutil.MemStore) *inventory.RegisterMovementUseCase {
	return inventory.NewRegisterMovementUseCase(
		store.Tx(),
		store.ProductRepo(),
		store.BranchRepo(),
		store.UserRepo(),
	)
}

func seedBase(store *testutil.MemStore) {
	store.SeedProduct(testProductID, "Tenis Runner 42")
	store.SeedBranch(testBranchID, "Sucursal Centro")
	store.SeedUser(testUserID, "almacenista", entity.RoleAlmacenista)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ajustes manuales
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_AjustePositivo(t *testing.T) {
	store := testutil.NewMemStore()
	seedBase(store)
	uc := newRegisterMovementUC(store)

	err := uc.RegisterMovement(context.Background(), testUserID, dto.RegisterMovementRequest{
		ProductID: testProductID,
		BranchID:  testBranchID,
		Type:      string(entity.MovementAjustePositivo),
		Quantity:  7,
	})
	require.NoError(t, err)

	stock, _ := store.StockRepo().Get(testProductID, testBranchID)
	assert.Equal(t, 7, stock.Quantity)

	movs, _ := store.MovementRepo().ListRecent(10)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovementAjustePositivo, movs[0].Type)
	assert.Equal(t, "Ajuste manual", movs[0].OriginRef)
	assert.Equal(t, testUserID, movs[0].UserID)
}

func TestRegisterMovement_AjusteNegativoSinStock_Rechaza(t *testing.T) {
	store := testutil.NewMemStore()
	seedBase(store)
	uc := newRegisterMovementUC(store)

	err := uc.RegisterMovement(context.Background(), testUserID, dto.RegisterMovementRequest{
		ProductID: testProductID,
		BranchID:  testBranchID,
		Type:      string(entity.MovementAjusteNegativo),
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	movs, _ := store.MovementRepo().ListRecent(10)
	assert.Empty(t, movs, "un ajuste rechazado no deja asiento")
}

// ──────────────────────────────────────────────────────────────────────────────
// Traslados entre sucursales: dos asientos, una unidad atómica
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_Transferencia_DosAsientos(t *testing.T) {
	store := testutil.NewMemStore()
	seedBase(store)
	destino := store.SeedBranch("branch-0000000000000000000000000002", "Sucursal Norte")
	store.SeedStockViaEntrada(testProductID, testBranchID, 10, testUserID)
	uc := newRegisterMovementUC(store)

	err := uc.RegisterMovement(context.Background(), testUserID, dto.RegisterMovementRequest{
		ProductID:    testProductID,
		FromBranchID: testBranchID,
		ToBranchID:   destino.ID,
		Type:         inventory.TipoTransferencia,
		Quantity:     4,
	})
	require.NoError(t, err)

	origen, _ := store.StockRepo().Get(testProductID, testBranchID)
	dest, _ := store.StockRepo().Get(testProductID, destino.ID)
	assert.Equal(t, 6, origen.Quantity)
	assert.Equal(t, 4, dest.Quantity)

	// Dos asientos: salida en origen con referencia al destino, y viceversa
	movs, _ := store.MovementRepo().ListByProduct(testProductID, 10, 0)
	tipos := make(map[entity.MovementType]string)
	for _, m := range movs {
		if m.Type == entity.MovementTransferenciaSalida || m.Type == entity.MovementTransferenciaEntrada {
			tipos[m.Type] = m.OriginRef
		}
	}
	require.Len(t, tipos, 2)
	assert.Equal(t, "Traslado a Sucursal Norte", tipos[entity.MovementTransferenciaSalida])
	assert.Equal(t, "Traslado desde Sucursal Centro", tipos[entity.MovementTransferenciaEntrada])
}

func TestRegisterMovement_TransferenciaSinStock_NoMutaNinguna(t *testing.T) {
	store := testutil.NewMemStore()
	seedBase(store)
	destino := store.SeedBranch("branch-0000000000000000000000000002", "Sucursal Norte")
	store.SeedStockViaEntrada(testProductID, testBranchID, 2, testUserID)
	uc := newRegisterMovementUC(store)

	err := uc.RegisterMovement(context.Background(), testUserID, dto.RegisterMovementRequest{
		ProductID:    testProductID,
		FromBranchID: testBranchID,
		ToBranchID:   destino.ID,
		Type:         inventory.TipoTransferencia,
		Quantity:     5,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	origen, _ := store.StockRepo().Get(testProductID, testBranchID)
	dest, _ := store.StockRepo().Get(testProductID, destino.ID)
	assert.Equal(t, 2, origen.Quantity, "el origen no cambia ante un traslado rechazado")
	assert.Equal(t, 0, dest.Quantity, "el destino no recibe nada ante un traslado rechazado")
}

func TestRegisterMovement_TransferenciaMismaSucursal_Invalida(t *testing.T) {
	store := testutil.NewMemStore()
	seedBase(store)
	uc := newRegisterMovementUC(store)

	err := uc.RegisterMovement(context.Background(), testUserID, dto.RegisterMovementRequest{
		ProductID:    testProductID,
		FromBranchID: testBranchID,
		ToBranchID:   testBranchID,
		Type:         inventory.TipoTransferencia,
		Quantity:     1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── Validación de tipo y referencias ──────────────────────────────────────────

func TestRegisterMovement_EntradaDirecta_NoPermitida(t *testing.T) {
	// ENTRADA y SALIDA llegan por compras y ventas con su documento origen,
	// nunca por el registro manual
	store := testutil.NewMemStore()
	seedBase(store)
	uc := newRegisterMovementUC(store)

	for _, tipo := range []string{string(entity.MovementEntrada), string(entity.MovementSalida)} {
		err := uc.RegisterMovement(context.Background(), testUserID, dto.RegisterMovementRequest{
			ProductID: testProductID,
			BranchID:  testBranchID,
			Type:      tipo,
			Quantity:  1,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo %s no debe aceptarse manualmente", tipo)
	}
}

func TestRegisterMovement_ProductoInexistente(t *testing.T) {
	store := testutil.NewMemStore()
	store.SeedBranch(testBranchID, "Sucursal Centro")
	store.SeedUser(testUserID, "almacenista", entity.RoleAlmacenista)
	uc := newRegisterMovementUC(store)

	err := uc.RegisterMovement(context.Background(), testUserID, dto.RegisterMovementRequest{
		ProductID: "prod-que-no-existe",
		BranchID:  testBranchID,
		Type:      string(entity.MovementAjustePositivo),
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegisterMovement_UsuarioInexistente(t *testing.T) {
	store := testutil.NewMemStore()
	store.SeedProduct(testProductID, "Tenis Runner 42")
	store.SeedBranch(testBranchID, "Sucursal Centro")
	uc := newRegisterMovementUC(store)

	err := uc.RegisterMovement(context.Background(), "user-fantasma", dto.RegisterMovementRequest{
		ProductID: testProductID,
		BranchID:  testBranchID,
		Type:      string(entity.MovementAjustePositivo),
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
