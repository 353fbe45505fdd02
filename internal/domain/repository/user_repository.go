package repository

import "github.com/bwcsoft/zapateria-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByUsername(username string) (*entity.User, error)
	List(limit, offset int) ([]*entity.User, error)
}
