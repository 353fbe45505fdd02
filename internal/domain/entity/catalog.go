package entity

// Brand marca de producto.
type Brand struct {
	ID   string
	Name string
}

// Category categoría de producto.
type Category struct {
	ID   string
	Name string
}

// Size talla de calzado.
type Size struct {
	ID   string
	Name string
}

// Branch sucursal de la tienda.
type Branch struct {
	ID      string
	Name    string
	Address string
	Phone   string
	State   bool // activa o no
}
