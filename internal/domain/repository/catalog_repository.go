package repository

import "github.com/bwcsoft/zapateria-api/internal/domain/entity"

// BrandRepository puerto de persistencia para marcas.
type BrandRepository interface {
	Create(brand *entity.Brand) error
	GetByID(id string) (*entity.Brand, error)
	List() ([]*entity.Brand, error)
	Update(brand *entity.Brand) error
	Delete(id string) error
}

// CategoryRepository puerto de persistencia para categorías.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	List() ([]*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id string) error
}

// SizeRepository puerto de persistencia para tallas.
type SizeRepository interface {
	Create(size *entity.Size) error
	GetByID(id string) (*entity.Size, error)
	List() ([]*entity.Size, error)
	Delete(id string) error
}

// BranchRepository puerto de persistencia para sucursales.
type BranchRepository interface {
	Create(branch *entity.Branch) error
	GetByID(id string) (*entity.Branch, error)
	List() ([]*entity.Branch, error)
	Update(branch *entity.Branch) error
	Delete(id string) error
}
