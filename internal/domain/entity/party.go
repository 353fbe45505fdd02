package entity

import "time"

// Supplier proveedor. Email único: dos compras que crean el mismo proveedor
// inline resuelven al primero persistido (first-write-wins).
type Supplier struct {
	ID          string
	Name        string
	ContactName string
	Phone       string
	Email       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// GeneralCustomerEmail email del cliente "mostrador" sembrado por cmd/seed;
// las ventas sin cliente explícito se asignan a este registro.
const GeneralCustomerEmail = "general@zapateria.com"

// Customer cliente.
type Customer struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName nombre completo para mostrar.
func (c *Customer) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
