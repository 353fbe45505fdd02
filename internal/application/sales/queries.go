package sales

import (
	"context"

	"github.com/bwcsoft/zapateria-api/internal/application/dto"
	"github.com/bwcsoft/zapateria-api/internal/domain"
	"github.com/bwcsoft/zapateria-api/internal/domain/entity"
)

// GetSale venta por ID con líneas y referencias resueltas.
func (uc *CreateSaleUseCase) GetSale(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	details, err := uc.saleRepo.GetDetailsBySaleID(id)
	if err != nil {
		return nil, err
	}
	return uc.assembleResponse(sale, details)
}

// ListSales listado paginado.
func (uc *CreateSaleUseCase) ListSales(ctx context.Context, limit, offset int) ([]*dto.SaleResponse, error) {
	sales, err := uc.saleRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		details, err := uc.saleRepo.GetDetailsBySaleID(s.ID)
		if err != nil {
			return nil, err
		}
		resp, err := uc.assembleResponse(s, details)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

// DeleteSale elimina el agregado y sus líneas. No revierte stock; una
// devolución se registra como movimiento nuevo, no como edición del libro.
func (uc *CreateSaleUseCase) DeleteSale(ctx context.Context, id string) error {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return err
	}
	if sale == nil {
		return domain.ErrNotFound
	}
	return uc.saleRepo.Delete(id)
}

func (uc *CreateSaleUseCase) assembleResponse(sale *entity.Sale, details []*entity.SaleDetail) (*dto.SaleResponse, error) {
	customer, err := uc.customerRepo.GetByID(sale.CustomerID)
	if err != nil {
		return nil, err
	}
	branch, err := uc.branchRepo.GetByID(sale.BranchID)
	if err != nil {
		return nil, err
	}
	docStatus, err := uc.docStatRepo.GetByID(sale.DocumentStatusID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		customer = &entity.Customer{ID: sale.CustomerID}
	}
	if branch == nil {
		branch = &entity.Branch{ID: sale.BranchID}
	}
	if docStatus == nil {
		docStatus = &entity.DocumentStatus{ID: sale.DocumentStatusID}
	}
	return uc.toResponse(sale, details, customer, branch, docStatus), nil
}
