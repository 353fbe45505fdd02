package repository

import "github.com/bwcsoft/zapateria-api/internal/domain/entity"

// PurchaseRepository puerto de persistencia para compras y sus líneas.
type PurchaseRepository interface {
	Create(purchase *entity.Purchase) error
	CreateDetail(detail *entity.PurchaseDetail) error
	GetByID(id string) (*entity.Purchase, error)
	GetDetailsByPurchaseID(purchaseID string) ([]*entity.PurchaseDetail, error)
	List(limit, offset int) ([]*entity.Purchase, error)
	// Delete elimina el agregado y sus líneas; no revierte stock (ver DESIGN.md).
	Delete(id string) error
}

// SaleRepository puerto de persistencia para ventas y sus líneas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateDetail(detail *entity.SaleDetail) error
	GetByID(id string) (*entity.Sale, error)
	GetDetailsBySaleID(saleID string) ([]*entity.SaleDetail, error)
	List(limit, offset int) ([]*entity.Sale, error)
	Delete(id string) error
}
