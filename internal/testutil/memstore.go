// Package testutil provee repositorios en memoria y un ejecutor de
// transacciones falso para tests de casos de uso, sin levantar Postgres.
// Las transacciones del ejecutor se serializan entre sí y hacen rollback
// restaurando un snapshot, igual que los bloqueos de fila y el rollback reales.
package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bwcsoft/zapateria-api/internal/domain"
	"github.com/bwcsoft/zapateria-api/internal/domain/entity"
	"github.com/bwcsoft/zapateria-api/internal/domain/repository"
)

type stockKey struct {
	productID string
	branchID  string
}

// MemStore estado compartido de todos los repos en memoria.
type MemStore struct {
	mu   sync.Mutex
	txMu sync.Mutex // serializa transacciones completas, como los row locks

	nextSeq   int64
	movements []*entity.Movement
	stock     map[stockKey]entity.Stock

	products    map[string]*entity.Product
	branches    map[string]*entity.Branch
	users       map[string]*entity.User
	customers   map[string]*entity.Customer
	suppliers   map[string]*entity.Supplier
	docStatuses map[string]*entity.DocumentStatus
	payStatuses map[string]*entity.PaymentStatus

	purchases       map[string]*entity.Purchase
	purchaseDetails []*entity.PurchaseDetail
	sales           map[string]*entity.Sale
	saleDetails     []*entity.SaleDetail
}

// NewMemStore crea un estado vacío.
func NewMemStore() *MemStore {
	return &MemStore{
		stock:       make(map[stockKey]entity.Stock),
		products:    make(map[string]*entity.Product),
		branches:    make(map[string]*entity.Branch),
		users:       make(map[string]*entity.User),
		customers:   make(map[string]*entity.Customer),
		suppliers:   make(map[string]*entity.Supplier),
		docStatuses: make(map[string]*entity.DocumentStatus),
		payStatuses: make(map[string]*entity.PaymentStatus),
		purchases:   make(map[string]*entity.Purchase),
		sales:       make(map[string]*entity.Sale),
	}
}

// ── Seed helpers ──────────────────────────────────────────────────────────────

// SeedBranch registra una sucursal activa.
func (s *MemStore) SeedBranch(id, name string) *entity.Branch {
	b := &entity.Branch{ID: id, Name: name, State: true}
	s.mu.Lock()
	s.branches[id] = b
	s.mu.Unlock()
	return b
}

// SeedProduct registra un producto mínimo.
func (s *MemStore) SeedProduct(id, name string) *entity.Product {
	p := &entity.Product{ID: id, Name: name}
	s.mu.Lock()
	s.products[id] = p
	s.mu.Unlock()
	return p
}

// SeedUser registra un usuario activo con el rol indicado.
func (s *MemStore) SeedUser(id, username, role string) *entity.User {
	u := &entity.User{ID: id, Username: username, Role: role, Status: "active"}
	s.mu.Lock()
	s.users[id] = u
	s.mu.Unlock()
	return u
}

// SeedGeneralCustomer registra el cliente mostrador.
func (s *MemStore) SeedGeneralCustomer() *entity.Customer {
	c := &entity.Customer{
		ID:        uuid.New().String(),
		FirstName: "Cliente",
		LastName:  "General",
		Email:     entity.GeneralCustomerEmail,
	}
	s.mu.Lock()
	s.customers[c.ID] = c
	s.mu.Unlock()
	return c
}

// SeedCustomer registra un cliente.
func (s *MemStore) SeedCustomer(id, firstName, email string) *entity.Customer {
	c := &entity.Customer{ID: id, FirstName: firstName, Email: email}
	s.mu.Lock()
	s.customers[id] = c
	s.mu.Unlock()
	return c
}

// SeedSupplier registra un proveedor.
func (s *MemStore) SeedSupplier(id, name, email string) *entity.Supplier {
	sp := &entity.Supplier{ID: id, Name: name, Email: email}
	s.mu.Lock()
	s.suppliers[id] = sp
	s.mu.Unlock()
	return sp
}

// SeedDocumentStatus registra un estado de documento con ID derivado del nombre.
func (s *MemStore) SeedDocumentStatus(name string) *entity.DocumentStatus {
	st := &entity.DocumentStatus{ID: "ds-" + name, Name: name}
	s.mu.Lock()
	s.docStatuses[st.ID] = st
	s.mu.Unlock()
	return st
}

// SeedPaymentStatus registra un estado de pago con ID derivado del nombre.
func (s *MemStore) SeedPaymentStatus(name string) *entity.PaymentStatus {
	st := &entity.PaymentStatus{ID: "ps-" + name, Name: name}
	s.mu.Lock()
	s.payStatuses[st.ID] = st
	s.mu.Unlock()
	return st
}

// ── Snapshot / rollback ───────────────────────────────────────────────────────

type snapshot struct {
	nextSeq         int64
	movements       []*entity.Movement
	stock           map[stockKey]entity.Stock
	purchases       map[string]*entity.Purchase
	purchaseDetails []*entity.PurchaseDetail
	sales           map[string]*entity.Sale
	saleDetails     []*entity.SaleDetail
}

func (s *MemStore) snapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := snapshot{
		nextSeq:         s.nextSeq,
		movements:       append([]*entity.Movement(nil), s.movements...),
		stock:           make(map[stockKey]entity.Stock, len(s.stock)),
		purchases:       make(map[string]*entity.Purchase, len(s.purchases)),
		purchaseDetails: append([]*entity.PurchaseDetail(nil), s.purchaseDetails...),
		sales:           make(map[string]*entity.Sale, len(s.sales)),
		saleDetails:     append([]*entity.SaleDetail(nil), s.saleDetails...),
	}
	for k, v := range s.stock {
		snap.stock[k] = v
	}
	for k, v := range s.purchases {
		snap.purchases[k] = v
	}
	for k, v := range s.sales {
		snap.sales[k] = v
	}
	return snap
}

func (s *MemStore) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSeq = snap.nextSeq
	s.movements = snap.movements
	s.stock = snap.stock
	s.purchases = snap.purchases
	s.purchaseDetails = snap.purchaseDetails
	s.sales = snap.sales
	s.saleDetails = snap.saleDetails
}

// ── Ejecutor de transacciones ─────────────────────────────────────────────────

// Tx implementa los ejecutores de transacción de inventario, compras y ventas
// sobre el estado en memoria. Cada Run* toma un snapshot del estado mutable y
// lo restaura si la función retorna error.
type Tx struct {
	s *MemStore
}

// Tx devuelve el ejecutor de transacciones del store.
func (s *MemStore) Tx() *Tx {
	return &Tx{s: s}
}

func (t *Tx) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
) error) error {
	t.s.txMu.Lock()
	defer t.s.txMu.Unlock()
	snap := t.s.snapshot()
	if err := fn(t.s.MovementRepo(), t.s.StockRepo()); err != nil {
		t.s.restore(snap)
		return err
	}
	return nil
}

func (t *Tx) RunPurchase(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
	purchaseRepo repository.PurchaseRepository,
) error) error {
	t.s.txMu.Lock()
	defer t.s.txMu.Unlock()
	snap := t.s.snapshot()
	if err := fn(t.s.MovementRepo(), t.s.StockRepo(), t.s.PurchaseRepo()); err != nil {
		t.s.restore(snap)
		return err
	}
	return nil
}

func (t *Tx) RunSale(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
	saleRepo repository.SaleRepository,
) error) error {
	t.s.txMu.Lock()
	defer t.s.txMu.Unlock()
	snap := t.s.snapshot()
	if err := fn(t.s.MovementRepo(), t.s.StockRepo(), t.s.SaleRepo()); err != nil {
		t.s.restore(snap)
		return err
	}
	return nil
}

// ── Repos del motor de inventario ─────────────────────────────────────────────

// MovementRepo libro de movimientos en memoria (append-only).
type MovementRepo struct{ s *MemStore }

func (s *MemStore) MovementRepo() *MovementRepo { return &MovementRepo{s} }

func (r *MovementRepo) Create(m *entity.Movement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *m
	if cp.ID == "" {
		cp.ID = uuid.New().String()
	}
	r.s.nextSeq++
	cp.Seq = r.s.nextSeq
	m.ID = cp.ID
	m.Seq = cp.Seq
	r.s.movements = append(r.s.movements, &cp)
	return nil
}

func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.movements {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MovementRepo) ListRecent(limit int) ([]*entity.Movement, error) {
	return r.list(func(*entity.Movement) bool { return true }, limit, 0)
}

func (r *MovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.Movement, error) {
	return r.list(func(m *entity.Movement) bool { return m.ProductID == productID }, limit, offset)
}

func (r *MovementRepo) ListByBranch(branchID string, limit, offset int) ([]*entity.Movement, error) {
	return r.list(func(m *entity.Movement) bool { return m.BranchID == branchID }, limit, offset)
}

func (r *MovementRepo) list(match func(*entity.Movement) bool, limit, offset int) ([]*entity.Movement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Movement
	for _, m := range r.s.movements {
		if match(m) {
			cp := *m
			out = append(out, &cp)
		}
	}
	// Fecha descendente, empates por orden de inserción (último primero)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].MovementDate.Equal(out[j].MovementDate) {
			return out[i].MovementDate.After(out[j].MovementDate)
		}
		return out[i].Seq > out[j].Seq
	})
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *MovementRepo) SumSignedByPair() ([]repository.StockSum, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sums := make(map[stockKey]int)
	for _, m := range r.s.movements {
		sums[stockKey{m.ProductID, m.BranchID}] += m.SignedQuantity()
	}
	out := make([]repository.StockSum, 0, len(sums))
	for k, q := range sums {
		out = append(out, repository.StockSum{ProductID: k.productID, BranchID: k.branchID, Quantity: q})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ProductID != out[j].ProductID {
			return out[i].ProductID < out[j].ProductID
		}
		return out[i].BranchID < out[j].BranchID
	})
	return out, nil
}

// StockRepo stock materializado en memoria. Get devuelve una entrada en cero
// cuando no existe fila, sin crearla; GetForUpdate la materializa en cero
// primero, igual que el adaptador de postgres.
type StockRepo struct{ s *MemStore }

func (s *MemStore) StockRepo() *StockRepo { return &StockRepo{s} }

func (r *StockRepo) Get(productID, branchID string) (*entity.Stock, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if st, ok := r.s.stock[stockKey{productID, branchID}]; ok {
		cp := st
		return &cp, nil
	}
	return &entity.Stock{ProductID: productID, BranchID: branchID, Quantity: 0}, nil
}

func (r *StockRepo) GetForUpdate(productID, branchID string) (*entity.Stock, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	k := stockKey{productID, branchID}
	// Materializa el par en cero antes de bloquear, como el adaptador real
	if _, ok := r.s.stock[k]; !ok {
		r.s.stock[k] = entity.Stock{ProductID: productID, BranchID: branchID, Quantity: 0}
	}
	cp := r.s.stock[k]
	return &cp, nil
}

func (r *StockRepo) Upsert(stock *entity.Stock) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.stock[stockKey{stock.ProductID, stock.BranchID}] = *stock
	return nil
}

func (r *StockRepo) ListByBranch(branchID string) ([]*entity.Stock, error) {
	return r.listWhere(func(st entity.Stock) bool { return st.BranchID == branchID })
}

func (r *StockRepo) ListByProduct(productID string) ([]*entity.Stock, error) {
	return r.listWhere(func(st entity.Stock) bool { return st.ProductID == productID })
}

func (r *StockRepo) ListBelowOrEqual(threshold int) ([]*entity.Stock, error) {
	return r.listWhere(func(st entity.Stock) bool { return st.Quantity <= threshold })
}

func (r *StockRepo) ListAll() ([]*entity.Stock, error) {
	return r.listWhere(func(entity.Stock) bool { return true })
}

func (r *StockRepo) listWhere(match func(entity.Stock) bool) ([]*entity.Stock, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Stock
	for _, st := range r.s.stock {
		if match(st) {
			cp := st
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ProductID != out[j].ProductID {
			return out[i].ProductID < out[j].ProductID
		}
		return out[i].BranchID < out[j].BranchID
	})
	return out, nil
}

// ── Repos de referencia ───────────────────────────────────────────────────────

// ProductRepo catálogo de productos en memoria.
type ProductRepo struct{ s *MemStore }

func (s *MemStore) ProductRepo() *ProductRepo { return &ProductRepo{s} }

func (r *ProductRepo) Create(p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products[p.ID] = p
	return nil
}

func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.products[id], nil
}

func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ProductRepo) Update(p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.products[p.ID] = p
	return nil
}

func (r *ProductRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.products, id)
	return nil
}

// BranchRepo sucursales en memoria.
type BranchRepo struct{ s *MemStore }

func (s *MemStore) BranchRepo() *BranchRepo { return &BranchRepo{s} }

func (r *BranchRepo) Create(b *entity.Branch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.branches[b.ID] = b
	return nil
}

func (r *BranchRepo) GetByID(id string) (*entity.Branch, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.branches[id], nil
}

func (r *BranchRepo) List() ([]*entity.Branch, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Branch, 0, len(r.s.branches))
	for _, b := range r.s.branches {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *BranchRepo) Update(b *entity.Branch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.branches[b.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.branches[b.ID] = b
	return nil
}

func (r *BranchRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.branches[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.branches, id)
	return nil
}

// UserRepo usuarios en memoria.
type UserRepo struct{ s *MemStore }

func (s *MemStore) UserRepo() *UserRepo { return &UserRepo{s} }

func (r *UserRepo) Create(u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Username == u.Username {
			return domain.ErrDuplicate
		}
	}
	r.s.users[u.ID] = u
	return nil
}

func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.users[id], nil
}

func (r *UserRepo) FindByUsername(username string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) List(limit, offset int) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

// CustomerRepo clientes en memoria.
type CustomerRepo struct{ s *MemStore }

func (s *MemStore) CustomerRepo() *CustomerRepo { return &CustomerRepo{s} }

func (r *CustomerRepo) Create(c *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.customers[c.ID] = c
	return nil
}

func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.customers[id], nil
}

func (r *CustomerRepo) GetGeneral() (*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.customers {
		if c.Email == entity.GeneralCustomerEmail {
			return c, nil
		}
	}
	return nil, nil
}

func (r *CustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Customer, 0, len(r.s.customers))
	for _, c := range r.s.customers {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CustomerRepo) Update(c *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.customers[c.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.customers[c.ID] = c
	return nil
}

func (r *CustomerRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.customers[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.customers, id)
	return nil
}

// SupplierRepo proveedores en memoria. Email único, como la constraint real.
type SupplierRepo struct{ s *MemStore }

func (s *MemStore) SupplierRepo() *SupplierRepo { return &SupplierRepo{s} }

func (r *SupplierRepo) Create(sp *entity.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if sp.Email != "" {
		for _, existing := range r.s.suppliers {
			if existing.Email == sp.Email {
				return domain.ErrDuplicate
			}
		}
	}
	r.s.suppliers[sp.ID] = sp
	return nil
}

func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.suppliers[id], nil
}

func (r *SupplierRepo) GetByEmail(email string) (*entity.Supplier, error) {
	if email == "" {
		return nil, nil
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, sp := range r.s.suppliers {
		if sp.Email == email {
			return sp, nil
		}
	}
	return nil, nil
}

func (r *SupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Supplier, 0, len(r.s.suppliers))
	for _, sp := range r.s.suppliers {
		out = append(out, sp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *SupplierRepo) Update(sp *entity.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.suppliers[sp.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.suppliers[sp.ID] = sp
	return nil
}

func (r *SupplierRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.suppliers[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.suppliers, id)
	return nil
}

// ── Repos de estados ──────────────────────────────────────────────────────────

// DocumentStatusRepo estados de documento en memoria.
type DocumentStatusRepo struct{ s *MemStore }

func (s *MemStore) DocumentStatusRepo() *DocumentStatusRepo { return &DocumentStatusRepo{s} }

func (r *DocumentStatusRepo) Create(st *entity.DocumentStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.docStatuses[st.ID] = st
	return nil
}

func (r *DocumentStatusRepo) GetByID(id string) (*entity.DocumentStatus, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.docStatuses[id], nil
}

func (r *DocumentStatusRepo) GetByName(name string) (*entity.DocumentStatus, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, st := range r.s.docStatuses {
		if st.Name == name {
			return st, nil
		}
	}
	return nil, nil
}

func (r *DocumentStatusRepo) List() ([]*entity.DocumentStatus, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.DocumentStatus, 0, len(r.s.docStatuses))
	for _, st := range r.s.docStatuses {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// PaymentStatusRepo estados de pago en memoria.
type PaymentStatusRepo struct{ s *MemStore }

func (s *MemStore) PaymentStatusRepo() *PaymentStatusRepo { return &PaymentStatusRepo{s} }

func (r *PaymentStatusRepo) Create(st *entity.PaymentStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.payStatuses[st.ID] = st
	return nil
}

func (r *PaymentStatusRepo) GetByID(id string) (*entity.PaymentStatus, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.payStatuses[id], nil
}

func (r *PaymentStatusRepo) GetByName(name string) (*entity.PaymentStatus, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, st := range r.s.payStatuses {
		if st.Name == name {
			return st, nil
		}
	}
	return nil, nil
}

func (r *PaymentStatusRepo) List() ([]*entity.PaymentStatus, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.PaymentStatus, 0, len(r.s.payStatuses))
	for _, st := range r.s.payStatuses {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ── Repos de documentos ───────────────────────────────────────────────────────

// PurchaseRepo compras en memoria.
type PurchaseRepo struct{ s *MemStore }

func (s *MemStore) PurchaseRepo() *PurchaseRepo { return &PurchaseRepo{s} }

func (r *PurchaseRepo) Create(p *entity.Purchase) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.purchases[p.ID] = p
	return nil
}

func (r *PurchaseRepo) CreateDetail(d *entity.PurchaseDetail) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.purchaseDetails = append(r.s.purchaseDetails, d)
	return nil
}

func (r *PurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.purchases[id], nil
}

func (r *PurchaseRepo) GetDetailsByPurchaseID(purchaseID string) ([]*entity.PurchaseDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.PurchaseDetail
	for _, d := range r.s.purchaseDetails {
		if d.PurchaseID == purchaseID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *PurchaseRepo) List(limit, offset int) ([]*entity.Purchase, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Purchase, 0, len(r.s.purchases))
	for _, p := range r.s.purchases {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PurchaseDate.After(out[j].PurchaseDate) })
	return out, nil
}

func (r *PurchaseRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.purchases[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.purchases, id)
	kept := r.s.purchaseDetails[:0]
	for _, d := range r.s.purchaseDetails {
		if d.PurchaseID != id {
			kept = append(kept, d)
		}
	}
	r.s.purchaseDetails = kept
	return nil
}

// SaleRepo ventas en memoria.
type SaleRepo struct{ s *MemStore }

func (s *MemStore) SaleRepo() *SaleRepo { return &SaleRepo{s} }

func (r *SaleRepo) Create(sale *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.sales[sale.ID] = sale
	return nil
}

func (r *SaleRepo) CreateDetail(d *entity.SaleDetail) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.saleDetails = append(r.s.saleDetails, d)
	return nil
}

func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.sales[id], nil
}

func (r *SaleRepo) GetDetailsBySaleID(saleID string) ([]*entity.SaleDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.SaleDetail
	for _, d := range r.s.saleDetails {
		if d.SaleID == saleID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *SaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Sale, 0, len(r.s.sales))
	for _, sale := range r.s.sales {
		out = append(out, sale)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SaleDate.After(out[j].SaleDate) })
	return out, nil
}

func (r *SaleRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.sales[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.sales, id)
	kept := r.s.saleDetails[:0]
	for _, d := range r.s.saleDetails {
		if d.SaleID != id {
			kept = append(kept, d)
		}
	}
	r.s.saleDetails = kept
	return nil
}

// SeedStockViaEntrada aplica una ENTRADA directa para dejar el par con la
// cantidad dada, con su asiento en el libro (mantiene la invariante
// stock == suma del libro desde el inicio del test).
func (s *MemStore) SeedStockViaEntrada(productID, branchID string, quantity int, userID string) {
	mov := &entity.Movement{
		ProductID:    productID,
		BranchID:     branchID,
		Type:         entity.MovementEntrada,
		Quantity:     quantity,
		MovementDate: time.Now(),
		UserID:       userID,
		Description:  "Carga inicial",
	}
	if err := s.MovementRepo().Create(mov); err != nil {
		panic(err)
	}
	st, _ := s.StockRepo().Get(productID, branchID)
	st.Quantity += quantity
	st.UpdatedAt = mov.MovementDate
	if err := s.StockRepo().Upsert(st); err != nil {
		panic(err)
	}
}
