package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/bwcsoft/zapateria-api/internal/domain"
	"github.com/bwcsoft/zapateria-api/internal/domain/entity"
	"github.com/bwcsoft/zapateria-api/internal/domain/repository"
)

var (
	_ repository.PurchaseRepository = (*PurchaseRepo)(nil)
	_ repository.SaleRepository     = (*SaleRepo)(nil)
)

// PurchaseRepo implementación de PurchaseRepository sobre PostgreSQL (usable con pool o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

const purchaseColumns = `id, supplier_id, user_id, branch_id, document_status_id, payment_status_id, purchase_date, total_amount, created_at`

// Create persiste la cabecera de la compra.
func (r *PurchaseRepo) Create(purchase *entity.Purchase) error {
	query := `
		INSERT INTO purchases (id, supplier_id, user_id, branch_id, document_status_id, payment_status_id, purchase_date, total_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		purchase.ID, purchase.SupplierID, purchase.UserID, purchase.BranchID,
		purchase.DocumentStatusID, purchase.PaymentStatusID,
		purchase.PurchaseDate, purchase.TotalAmount, purchase.CreatedAt)
	if err != nil {
		return fmt.Errorf("create purchase: %w", err)
	}
	return nil
}

// CreateDetail persiste una línea de la compra.
func (r *PurchaseRepo) CreateDetail(detail *entity.PurchaseDetail) error {
	if detail.ID == "" {
		detail.ID = uuid.New().String()
	}
	query := `
		INSERT INTO purchase_details (id, purchase_id, product_id, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		detail.ID, detail.PurchaseID, detail.ProductID,
		detail.Quantity, detail.UnitPrice, detail.TotalPrice)
	if err != nil {
		return fmt.Errorf("create purchase detail: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una compra.
func (r *PurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE id = $1`
	var p entity.Purchase
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.SupplierID, &p.UserID, &p.BranchID, &p.DocumentStatusID,
		&p.PaymentStatusID, &p.PurchaseDate, &p.TotalAmount, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	return &p, nil
}

// GetDetailsByPurchaseID obtiene las líneas de una compra.
func (r *PurchaseRepo) GetDetailsByPurchaseID(purchaseID string) ([]*entity.PurchaseDetail, error) {
	query := `
		SELECT id, purchase_id, product_id, quantity, unit_price, total_price
		FROM purchase_details WHERE purchase_id = $1`
	rows, err := r.q.Query(context.Background(), query, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("get purchase details: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseDetail
	for rows.Next() {
		var d entity.PurchaseDetail
		if err := rows.Scan(&d.ID, &d.PurchaseID, &d.ProductID, &d.Quantity,
			&d.UnitPrice, &d.TotalPrice); err != nil {
			return nil, fmt.Errorf("scan purchase detail: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// List lista compras, más recientes primero.
func (r *PurchaseRepo) List(limit, offset int) ([]*entity.Purchase, error) {
	query := `
		SELECT ` + purchaseColumns + `
		FROM purchases ORDER BY purchase_date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var list []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(&p.ID, &p.SupplierID, &p.UserID, &p.BranchID,
			&p.DocumentStatusID, &p.PaymentStatusID, &p.PurchaseDate,
			&p.TotalAmount, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina la compra y sus líneas (cascade). El stock y los movimientos
// del libro no se tocan.
func (r *PurchaseRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM purchases WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete purchase: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, customer_id, user_id, branch_id, document_status_id, sale_date, total_amount, created_at`

// Create persiste la cabecera de la venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, customer_id, user_id, branch_id, document_status_id, sale_date, total_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.CustomerID, sale.UserID, sale.BranchID,
		sale.DocumentStatusID, sale.SaleDate, sale.TotalAmount, sale.CreatedAt)
	if err != nil {
		return fmt.Errorf("create sale: %w", err)
	}
	return nil
}

// CreateDetail persiste una línea de la venta.
func (r *SaleRepo) CreateDetail(detail *entity.SaleDetail) error {
	if detail.ID == "" {
		detail.ID = uuid.New().String()
	}
	query := `
		INSERT INTO sale_details (id, sale_id, product_id, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		detail.ID, detail.SaleID, detail.ProductID,
		detail.Quantity, detail.UnitPrice, detail.TotalPrice)
	if err != nil {
		return fmt.Errorf("create sale detail: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una venta.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.CustomerID, &s.UserID, &s.BranchID, &s.DocumentStatusID,
		&s.SaleDate, &s.TotalAmount, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// GetDetailsBySaleID obtiene las líneas de una venta.
func (r *SaleRepo) GetDetailsBySaleID(saleID string) ([]*entity.SaleDetail, error) {
	query := `
		SELECT id, sale_id, product_id, quantity, unit_price, total_price
		FROM sale_details WHERE sale_id = $1`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("get sale details: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleDetail
	for rows.Next() {
		var d entity.SaleDetail
		if err := rows.Scan(&d.ID, &d.SaleID, &d.ProductID, &d.Quantity,
			&d.UnitPrice, &d.TotalPrice); err != nil {
			return nil, fmt.Errorf("scan sale detail: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// List lista ventas, más recientes primero.
func (r *SaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales ORDER BY sale_date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.CustomerID, &s.UserID, &s.BranchID,
			&s.DocumentStatusID, &s.SaleDate, &s.TotalAmount, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete elimina la venta y sus líneas (cascade). El stock y los movimientos
// del libro no se tocan.
func (r *SaleRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
