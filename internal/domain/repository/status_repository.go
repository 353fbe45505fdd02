package repository

import "github.com/bwcsoft/zapateria-api/internal/domain/entity"

// DocumentStatusRepository puerto para estados de documento.
// GetByName resuelve el estado por defecto (PENDIENTE) cuando el request no
// trae un ID explícito.
type DocumentStatusRepository interface {
	Create(status *entity.DocumentStatus) error
	GetByID(id string) (*entity.DocumentStatus, error)
	GetByName(name string) (*entity.DocumentStatus, error)
	List() ([]*entity.DocumentStatus, error)
}

// PaymentStatusRepository puerto para estados de pago.
type PaymentStatusRepository interface {
	Create(status *entity.PaymentStatus) error
	GetByID(id string) (*entity.PaymentStatus, error)
	GetByName(name string) (*entity.PaymentStatus, error)
	List() ([]*entity.PaymentStatus, error)
}

// PaymentMethodRepository puerto para métodos de pago.
type PaymentMethodRepository interface {
	Create(method *entity.PaymentMethod) error
	GetByName(name string) (*entity.PaymentMethod, error)
	List() ([]*entity.PaymentMethod, error)
}
