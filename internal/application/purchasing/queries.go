package purchasing

import (
	"context"

	"github.com/bwcsoft/zapateria-api/internal/application/dto"
	"github.com/bwcsoft/zapateria-api/internal/domain"
	"github.com/bwcsoft/zapateria-api/internal/domain/entity"
)

// GetPurchase compra por ID con líneas y referencias resueltas.
func (uc *CreatePurchaseUseCase) GetPurchase(ctx context.Context, id string) (*dto.PurchaseResponse, error) {
	purchase, err := uc.purchaseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, domain.ErrNotFound
	}
	details, err := uc.purchaseRepo.GetDetailsByPurchaseID(id)
	if err != nil {
		return nil, err
	}
	return uc.assembleResponse(purchase, details)
}

// ListPurchases listado paginado.
func (uc *CreatePurchaseUseCase) ListPurchases(ctx context.Context, limit, offset int) ([]*dto.PurchaseResponse, error) {
	purchases, err := uc.purchaseRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		details, err := uc.purchaseRepo.GetDetailsByPurchaseID(p.ID)
		if err != nil {
			return nil, err
		}
		resp, err := uc.assembleResponse(p, details)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

// DeletePurchase elimina el agregado y sus líneas. No revierte stock: una
// compensación debe registrarse como movimiento nuevo, nunca como edición
// retroactiva del libro.
func (uc *CreatePurchaseUseCase) DeletePurchase(ctx context.Context, id string) error {
	purchase, err := uc.purchaseRepo.GetByID(id)
	if err != nil {
		return err
	}
	if purchase == nil {
		return domain.ErrNotFound
	}
	return uc.purchaseRepo.Delete(id)
}

func (uc *CreatePurchaseUseCase) assembleResponse(purchase *entity.Purchase, details []*entity.PurchaseDetail) (*dto.PurchaseResponse, error) {
	supplier, err := uc.supplierRepo.GetByID(purchase.SupplierID)
	if err != nil {
		return nil, err
	}
	branch, err := uc.branchRepo.GetByID(purchase.BranchID)
	if err != nil {
		return nil, err
	}
	docStatus, err := uc.docStatRepo.GetByID(purchase.DocumentStatusID)
	if err != nil {
		return nil, err
	}
	payStatus, err := uc.payStatRepo.GetByID(purchase.PaymentStatusID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		supplier = &entity.Supplier{ID: purchase.SupplierID}
	}
	if branch == nil {
		branch = &entity.Branch{ID: purchase.BranchID}
	}
	if docStatus == nil {
		docStatus = &entity.DocumentStatus{ID: purchase.DocumentStatusID}
	}
	if payStatus == nil {
		payStatus = &entity.PaymentStatus{ID: purchase.PaymentStatusID}
	}
	return uc.toResponse(purchase, details, supplier, branch, docStatus, payStatus), nil
}
