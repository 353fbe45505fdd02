package purchasing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bwcsoft/zapateria-api/internal/application/dto"
	"github.com/bwcsoft/zapateria-api/internal/application/purchasing"
	"github.com/bwcsoft/zapateria-api/internal/domain"
	"github.com/bwcsoft/zapateria-api/internal/domain/entity"
	"github.com/bwcsoft/zapateria-api/internal/domain/repository"
	"github.com/bwcsoft/zapateria-api/internal/testutil"
)

const (
	testBranchID   = "branch-0000000000000000000000000001"
	testUserID     = "user-00000000000000000000000000001"
	testSupplierID = "supp-00000000000000000000000000001"
)

func newPurchaseUC(store *testutil.MemStore) *purchasing.CreatePurchaseUseCase {
	return newPurchaseUCWithSupplierRepo(store, store.SupplierRepo())
}

func newPurchaseUCWithSupplierRepo(store *testutil.MemStore, supplierRepo repository.SupplierRepository) *purchasing.CreatePurchaseUseCase {
	return purchasing.NewCreatePurchaseUseCase(
		store.Tx(),
		supplierRepo,
		store.ProductRepo(),
		store.BranchRepo(),
		store.UserRepo(),
		store.DocumentStatusRepo(),
		store.PaymentStatusRepo(),
		store.PurchaseRepo(),
	)
}

func seedPurchaseBase(store *testutil.MemStore) {
	store.SeedBranch(testBranchID, "Sucursal Centro")
	store.SeedUser(testUserID, "admin", entity.RoleAdministrador)
	store.SeedSupplier(testSupplierID, "Calzados del Norte", "ventas@calzadosnorte.com")
	store.SeedDocumentStatus(entity.DocumentStatusPendiente)
	store.SeedDocumentStatus(entity.DocumentStatusCompletado)
	store.SeedPaymentStatus(entity.PaymentStatusPendiente)
	store.SeedPaymentStatus(entity.PaymentStatusPagado)
	store.SeedProduct("prod-1", "Tenis Runner 42")
	store.SeedProduct("prod-2", "Bota Trek 40")
	store.SeedProduct("prod-3", "Sandalia Playa 38")
}

func linea(productID string, qty int, unitPrice float64) dto.PurchaseLineRequest {
	return dto.PurchaseLineRequest{
		ProductID: productID,
		Quantity:  qty,
		UnitPrice: decimal.NewFromFloat(unitPrice),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Camino feliz: agregado + líneas + entradas de stock + asientos, todo o nada
// ──────────────────────────────────────────────────────────────────────────────

func TestCreatePurchase_PersisteAgregadoStockYLibro(t *testing.T) {
	store := testutil.NewMemStore()
	seedPurchaseBase(store)
	uc := newPurchaseUC(store)

	resp, err := uc.CreatePurchase(context.Background(), dto.CreatePurchaseRequest{
		SupplierID: testSupplierID,
		BranchID:   testBranchID,
		UserID:     testUserID,
		Details: []dto.PurchaseLineRequest{
			linea("prod-1", 5, 100),
			linea("prod-2", 3, 200),
			linea("prod-3", 2, 150),
		},
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	// Total: 5*100 + 3*200 + 2*150 = 1400
	assert.True(t, decimal.NewFromInt(1400).Equal(resp.TotalAmount),
		"total esperado 1400, obtenido %s", resp.TotalAmount)
	assert.Len(t, resp.Details, 3)
	assert.Equal(t, "Calzados del Norte", resp.Supplier.Name)

	// Estados por defecto: PENDIENTE en documento y pago
	assert.Equal(t, entity.DocumentStatusPendiente, resp.DocumentStatus.Name)
	assert.Equal(t, entity.PaymentStatusPendiente, resp.PaymentStatus.Name)

	// Stock: una entrada por línea en la sucursal de la compra
	for _, c := range []struct {
		producto string
		cantidad int
	}{{"prod-1", 5}, {"prod-2", 3}, {"prod-3", 2}} {
		stock, _ := store.StockRepo().Get(c.producto, testBranchID)
		assert.Equal(t, c.cantidad, stock.Quantity, "stock de %s", c.producto)
	}

	// Libro: tres asientos ENTRADA con el ID de la compra como referencia
	movs, _ := store.MovementRepo().ListRecent(10)
	require.Len(t, movs, 3)
	for _, m := range movs {
		assert.Equal(t, entity.MovementEntrada, m.Type)
		assert.Equal(t, resp.ID, m.OriginRef, "el asiento debe referenciar la compra")
		assert.Equal(t, testUserID, m.UserID)
	}

	// Agregado y líneas persistidos
	purchase, _ := store.PurchaseRepo().GetByID(resp.ID)
	require.NotNil(t, purchase)
	details, _ := store.PurchaseRepo().GetDetailsByPurchaseID(resp.ID)
	assert.Len(t, details, 3)
}

func TestCreatePurchase_FechaExplicitaRespetada(t *testing.T) {
	store := testutil.NewMemStore()
	seedPurchaseBase(store)
	uc := newPurchaseUC(store)

	fecha := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	resp, err := uc.CreatePurchase(context.Background(), dto.CreatePurchaseRequest{
		SupplierID:   testSupplierID,
		BranchID:     testBranchID,
		UserID:       testUserID,
		PurchaseDate: &fecha,
		Details:      []dto.PurchaseLineRequest{linea("prod-1", 1, 100)},
	})
	require.NoError(t, err)
	assert.True(t, fecha.Equal(resp.PurchaseDate))
}

func TestCreatePurchase_TotalLineaCalculadoSiFalta(t *testing.T) {
	store := testutil.NewMemStore()
	seedPurchaseBase(store)
	uc := newPurchaseUC(store)

	resp, err := uc.CreatePurchase(context.Background(), dto.CreatePurchaseRequest{
		SupplierID: testSupplierID,
		BranchID:   testBranchID,
		UserID:     testUserID,
		Details:    []dto.PurchaseLineRequest{linea("prod-1", 4, 250)},
	})
	require.NoError(t, err)
	require.Len(t, resp.Details, 1)
	assert.True(t, decimal.NewFromInt(1000).Equal(resp.Details[0].TotalPrice))
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolución de proveedor inline: reutilización por email y first-write-wins
// ──────────────────────────────────────────────────────────────────────────────

func TestCreatePurchase_ProveedorInline_CreaYReutilizaPorEmail(t *testing.T) {
	store := testutil.NewMemStore()
	seedPurchaseBase(store)
	uc := newPurchaseUC(store)

	req := dto.CreatePurchaseRequest{
		SupplierName:  "Importadora Sur",
		SupplierEmail: "compras@importadorasur.com",
		BranchID:      testBranchID,
		UserID:        testUserID,
		Details:       []dto.PurchaseLineRequest{linea("prod-1", 1, 100)},
	}
	primera, err := uc.CreatePurchase(context.Background(), req)
	require.NoError(t, err)
	segunda, err := uc.CreatePurchase(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, primera.Supplier.ID, segunda.Supplier.ID,
		"el mismo email debe resolver al proveedor ya persistido")

	suppliers, _ := store.SupplierRepo().List(100, 0)
	assert.Len(t, suppliers, 2, "solo el sembrado más el inline: sin duplicados")
}

func TestCreatePurchase_ProveedoresInlineSinEmail_NoChocan(t *testing.T) {
	store := testutil.NewMemStore()
	seedPurchaseBase(store)
	uc := newPurchaseUC(store)

	// Dos proveedores inline distintos, ambos sin email: la unicidad de email
	// aplica solo a emails informados, así que ninguno debe chocar
	primera, err := uc.CreatePurchase(context.Background(), dto.CreatePurchaseRequest{
		SupplierName: "Proveedor Sin Correo Uno",
		BranchID:     testBranchID,
		UserID:       testUserID,
		Details:      []dto.PurchaseLineRequest{linea("prod-1", 1, 100)},
	})
	require.NoError(t, err)

	segunda, err := uc.CreatePurchase(context.Background(), dto.CreatePurchaseRequest{
		SupplierName: "Proveedor Sin Correo Dos",
		BranchID:     testBranchID,
		UserID:       testUserID,
		Details:      []dto.PurchaseLineRequest{linea("prod-1", 1, 100)},
	})
	require.NoError(t, err, "el segundo proveedor sin email no debe fallar por duplicado")

	assert.NotEqual(t, primera.Supplier.ID, segunda.Supplier.ID)
	assert.Equal(t, "Proveedor Sin Correo Uno", primera.Supplier.Name)
	assert.Equal(t, "Proveedor Sin Correo Dos", segunda.Supplier.Name)
}

// carreraSupplierRepo simula la carrera entre dos compras que crean el mismo
// proveedor inline: la primera lectura por email no ve nada, pero el insert
// choca con la constraint de unicidad.
type carreraSupplierRepo struct {
	repository.SupplierRepository
	primeraLectura bool
}

func (r *carreraSupplierRepo) GetByEmail(email string) (*entity.Supplier, error) {
	if !r.primeraLectura {
		r.primeraLectura = true
		return nil, nil
	}
	return r.SupplierRepository.GetByEmail(email)
}

func TestCreatePurchase_CarreraDeProveedores_GanaElPrimero(t *testing.T) {
	store := testutil.NewMemStore()
	seedPurchaseBase(store)

	// El proveedor ya existe con ese email, pero la primera lectura no lo ve
	existente := store.SeedSupplier("supp-ganador", "Distribuidora Andina", "pedidos@andina.com")
	repo := &carreraSupplierRepo{SupplierRepository: store.SupplierRepo()}
	uc := newPurchaseUCWithSupplierRepo(store, repo)

	resp, err := uc.CreatePurchase(context.Background(), dto.CreatePurchaseRequest{
		SupplierName:  "Distribuidora Andina SAS",
		SupplierEmail: "pedidos@andina.com",
		BranchID:      testBranchID,
		UserID:        testUserID,
		Details:       []dto.PurchaseLineRequest{linea("prod-1", 1, 100)},
	})
	require.NoError(t, err, "la violación de unicidad debe resolverse releyendo por email")
	assert.Equal(t, existente.ID, resp.Supplier.ID, "gana el primero persistido")
	assert.Equal(t, "Distribuidora Andina", resp.Supplier.Name)
}

// ── Validación de entrada y referencias ───────────────────────────────────────

func TestCreatePurchase_SinLineas_Invalida(t *testing.T) {
	store := testutil.NewMemStore()
	seedPurchaseBase(store)
	uc := newPurchaseUC(store)

	_, err := uc.CreatePurchase(context.Background(), dto.CreatePurchaseRequest{
		SupplierID: testSupplierID,
		BranchID:   testBranchID,
		UserID:     testUserID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreatePurchase_CantidadCero_Invalida(t *testing.T) {
	store := testutil.NewMemStore()
	seedPurchaseBase(store)
	uc := newPurchaseUC(store)

	_, err := uc.CreatePurchase(context.Background(), dto.CreatePurchaseRequest{
		SupplierID: testSupplierID,
		BranchID:   testBranchID,
		UserID:     testUserID,
		Details:    []dto.PurchaseLineRequest{linea("prod-1", 0, 100)},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	movs, _ := store.MovementRepo().ListRecent(10)
	assert.Empty(t, movs, "una compra rechazada no deja asientos")
}

func TestCreatePurchase_SinDatosDeProveedor_Invalida(t *testing.T) {
	store := testutil.NewMemStore()
	seedPurchaseBase(store)
	uc := newPurchaseUC(store)

	_, err := uc.CreatePurchase(context.Background(), dto.CreatePurchaseRequest{
		BranchID: testBranchID,
		UserID:   testUserID,
		Details:  []dto.PurchaseLineRequest{linea("prod-1", 1, 100)},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreatePurchase_SucursalInexistente(t *testing.T) {
	store := testutil.NewMemStore()
	seedPurchaseBase(store)
	uc := newPurchaseUC(store)

	_, err := uc.CreatePurchase(context.Background(), dto.CreatePurchaseRequest{
		SupplierID: testSupplierID,
		BranchID:   "branch-fantasma",
		UserID:     testUserID,
		Details:    []dto.PurchaseLineRequest{linea("prod-1", 1, 100)},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreatePurchase_ProductoInexistente_NoPersisteNada(t *testing.T) {
	store := testutil.NewMemStore()
	seedPurchaseBase(store)
	uc := newPurchaseUC(store)

	_, err := uc.CreatePurchase(context.Background(), dto.CreatePurchaseRequest{
		SupplierID: testSupplierID,
		BranchID:   testBranchID,
		UserID:     testUserID,
		Details: []dto.PurchaseLineRequest{
			linea("prod-1", 5, 100),
			linea("prod-fantasma", 1, 100),
		},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)

	purchases, _ := store.PurchaseRepo().List(100, 0)
	assert.Empty(t, purchases)
	stock, _ := store.StockRepo().Get("prod-1", testBranchID)
	assert.Equal(t, 0, stock.Quantity, "la línea válida tampoco debe aplicarse")
}
