package repository

import "github.com/bwcsoft/zapateria-api/internal/domain/entity"

// ProductRepository puerto de persistencia para productos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
}
