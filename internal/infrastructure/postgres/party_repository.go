package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bwcsoft/zapateria-api/internal/domain"
	"github.com/bwcsoft/zapateria-api/internal/domain/entity"
	"github.com/bwcsoft/zapateria-api/internal/domain/repository"
)

var (
	_ repository.SupplierRepository = (*SupplierRepo)(nil)
	_ repository.CustomerRepository = (*CustomerRepo)(nil)
)

// SupplierRepo implementación de SupplierRepository sobre PostgreSQL. El email
// lleva un índice único parcial (solo emails informados): el INSERT duplicado
// responde domain.ErrDuplicate y el orquestador de compras re-lee por email
// (first-write-wins). Los proveedores sin email no chocan entre sí.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

const supplierColumns = `id, name, contact_name, phone, email, created_at, updated_at`

func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, name, contact_name, phone, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.Name, supplier.ContactName, supplier.Phone,
		supplier.Email, supplier.CreatedAt, supplier.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create supplier: %w", err)
	}
	return nil
}

func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`
	return r.getOne(query, id)
}

func (r *SupplierRepo) GetByEmail(email string) (*entity.Supplier, error) {
	if email == "" {
		return nil, nil
	}
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE email = $1`
	return r.getOne(query, email)
}

func (r *SupplierRepo) getOne(query string, arg any) (*entity.Supplier, error) {
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&s.ID, &s.Name, &s.ContactName, &s.Phone, &s.Email, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

func (r *SupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.ContactName, &s.Phone, &s.Email,
			&s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers
		SET name = $2, contact_name = $3, phone = $4, email = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.Name, supplier.ContactName, supplier.Phone,
		supplier.Email, supplier.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update supplier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SupplierRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CustomerRepo implementación de CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = `id, first_name, last_name, email, phone, address, created_at, updated_at`

func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, first_name, last_name, email, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.FirstName, customer.LastName, customer.Email,
		customer.Phone, customer.Address, customer.CreatedAt, customer.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create customer: %w", err)
	}
	return nil
}

func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	return r.getOne(query, id)
}

// GetGeneral devuelve el cliente mostrador sembrado por cmd/seed.
func (r *CustomerRepo) GetGeneral() (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE email = $1`
	return r.getOne(query, entity.GeneralCustomerEmail)
}

func (r *CustomerRepo) getOne(query string, arg any) (*entity.Customer, error) {
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Address,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

func (r *CustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY first_name, last_name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone,
			&c.Address, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customers
		SET first_name = $2, last_name = $3, email = $4, phone = $5, address = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.FirstName, customer.LastName, customer.Email,
		customer.Phone, customer.Address, customer.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CustomerRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
