package dto

// CreateSupplierRequest body para proveedores.
type CreateSupplierRequest struct {
	Name        string `json:"name" validate:"required"`
	ContactName string `json:"contact_name,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email" validate:"required,email"`
}

// CreateCustomerRequest body para clientes.
type CreateCustomerRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
}
