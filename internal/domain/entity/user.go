package entity

import "time"

// Roles de la aplicación.
const (
	RoleAdministrador = "ADMINISTRADOR"
	RoleVendedor      = "VENDEDOR"
	RoleAlmacenista   = "ALMACENISTA"
)

// User usuario de la aplicación con rol y sucursales asignadas.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         string
	BranchIDs    []string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
