package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bwcsoft/zapateria-api/internal/application/dto"
	"github.com/bwcsoft/zapateria-api/internal/domain"
	"github.com/bwcsoft/zapateria-api/internal/domain/entity"
	"github.com/bwcsoft/zapateria-api/internal/domain/repository"
)

// SupplierUseCase administra proveedores.
type SupplierUseCase struct {
	supplierRepo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso con el puerto de persistencia.
func NewSupplierUseCase(supplierRepo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{supplierRepo: supplierRepo}
}

// Create persiste un proveedor. El email es único: un duplicado responde
// domain.ErrDuplicate.
func (uc *SupplierUseCase) Create(in *dto.CreateSupplierRequest) (*dto.SupplierInfo, error) {
	supplier := &entity.Supplier{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		ContactName: in.ContactName,
		Phone:       in.Phone,
		Email:       strings.ToLower(strings.TrimSpace(in.Email)),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if supplier.Name == "" || supplier.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierInfo(supplier), nil
}

// GetByID obtiene un proveedor por ID.
func (uc *SupplierUseCase) GetByID(id string) (*dto.SupplierInfo, error) {
	supplier, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	return toSupplierInfo(supplier), nil
}

// List lista proveedores paginados.
func (uc *SupplierUseCase) List(limit, offset int) ([]dto.SupplierInfo, error) {
	suppliers, err := uc.supplierRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierInfo, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, *toSupplierInfo(s))
	}
	return out, nil
}

// Update reemplaza los campos editables del proveedor.
func (uc *SupplierUseCase) Update(id string, in *dto.CreateSupplierRequest) (*dto.SupplierInfo, error) {
	supplier, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	supplier.Name = strings.TrimSpace(in.Name)
	supplier.ContactName = in.ContactName
	supplier.Phone = in.Phone
	supplier.Email = strings.ToLower(strings.TrimSpace(in.Email))
	supplier.UpdatedAt = time.Now()
	if err := uc.supplierRepo.Update(supplier); err != nil {
		return nil, err
	}
	return toSupplierInfo(supplier), nil
}

// Delete elimina el proveedor.
func (uc *SupplierUseCase) Delete(id string) error {
	supplier, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	return uc.supplierRepo.Delete(id)
}

func toSupplierInfo(s *entity.Supplier) *dto.SupplierInfo {
	return &dto.SupplierInfo{
		ID:          s.ID,
		Name:        s.Name,
		ContactName: s.ContactName,
		Phone:       s.Phone,
		Email:       s.Email,
	}
}

// CustomerUseCase administra clientes.
type CustomerUseCase struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso con el puerto de persistencia.
func NewCustomerUseCase(customerRepo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{customerRepo: customerRepo}
}

// Create persiste un cliente.
func (uc *CustomerUseCase) Create(in *dto.CreateCustomerRequest) (*dto.CustomerInfo, error) {
	firstName := strings.TrimSpace(in.FirstName)
	if firstName == "" {
		return nil, domain.ErrInvalidInput
	}
	customer := &entity.Customer{
		ID:        uuid.NewString(),
		FirstName: firstName,
		LastName:  strings.TrimSpace(in.LastName),
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uc.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerInfo(customer), nil
}

// GetByID obtiene un cliente por ID.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerInfo, error) {
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerInfo(customer), nil
}

// List lista clientes paginados.
func (uc *CustomerUseCase) List(limit, offset int) ([]dto.CustomerInfo, error) {
	customers, err := uc.customerRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerInfo, 0, len(customers))
	for _, c := range customers {
		out = append(out, *toCustomerInfo(c))
	}
	return out, nil
}

// Update reemplaza los campos editables del cliente.
func (uc *CustomerUseCase) Update(id string, in *dto.CreateCustomerRequest) (*dto.CustomerInfo, error) {
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	customer.FirstName = strings.TrimSpace(in.FirstName)
	customer.LastName = strings.TrimSpace(in.LastName)
	customer.Email = strings.ToLower(strings.TrimSpace(in.Email))
	customer.Phone = in.Phone
	customer.Address = in.Address
	customer.UpdatedAt = time.Now()
	if err := uc.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerInfo(customer), nil
}

// Delete elimina el cliente. El cliente mostrador no se elimina.
func (uc *CustomerUseCase) Delete(id string) error {
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	if customer.Email == entity.GeneralCustomerEmail {
		return domain.ErrConflict
	}
	return uc.customerRepo.Delete(id)
}

func toCustomerInfo(c *entity.Customer) *dto.CustomerInfo {
	return &dto.CustomerInfo{
		ID:    c.ID,
		Name:  c.FullName(),
		Email: c.Email,
		Phone: c.Phone,
	}
}
