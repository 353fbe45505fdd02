package repository

import "github.com/bwcsoft/zapateria-api/internal/domain/entity"

// SupplierRepository puerto de persistencia para proveedores.
// GetByEmail sostiene la resolución first-write-wins del orquestador de compras.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	GetByEmail(email string) (*entity.Supplier, error)
	List(limit, offset int) ([]*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	Delete(id string) error
}

// CustomerRepository puerto de persistencia para clientes.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	// GetGeneral devuelve el cliente mostrador sembrado (entity.GeneralCustomerEmail).
	GetGeneral() (*entity.Customer, error)
	List(limit, offset int) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
}
