// Package purchasing orquesta la creación de compras: resolución de
// referencias, persistencia del agregado y entrada de stock con su asiento en
// el libro, todo dentro de una unidad atómica.
package purchasing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bwcsoft/zapateria-api/internal/application/dto"
	"github.com/bwcsoft/zapateria-api/internal/application/inventory"
	"github.com/bwcsoft/zapateria-api/internal/domain"
	"github.com/bwcsoft/zapateria-api/internal/domain/entity"
	"github.com/bwcsoft/zapateria-api/internal/domain/repository"
)

// CreatePurchaseUseCase orquestador de compras: Requested → Validated →
// Committed, o Requested → Rejected sin efecto alguno.
type CreatePurchaseUseCase struct {
	txRunner     PurchaseTxRunner
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
	branchRepo   repository.BranchRepository
	userRepo     repository.UserRepository
	docStatRepo  repository.DocumentStatusRepository
	payStatRepo  repository.PaymentStatusRepository
	purchaseRepo repository.PurchaseRepository
}

// NewCreatePurchaseUseCase construye el caso de uso.
func NewCreatePurchaseUseCase(
	txRunner PurchaseTxRunner,
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
	branchRepo repository.BranchRepository,
	userRepo repository.UserRepository,
	docStatRepo repository.DocumentStatusRepository,
	payStatRepo repository.PaymentStatusRepository,
	purchaseRepo repository.PurchaseRepository,
) *CreatePurchaseUseCase {
	return &CreatePurchaseUseCase{
		txRunner:     txRunner,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
		branchRepo:   branchRepo,
		userRepo:     userRepo,
		docStatRepo:  docStatRepo,
		payStatRepo:  payStatRepo,
		purchaseRepo: purchaseRepo,
	}
}

// CreatePurchase resuelve referencias (proveedor por ID o inline por email,
// sucursal, usuario, estados con default PENDIENTE), valida todas las líneas y
// persiste el agregado junto con un delta ENTRADA y un asiento por línea, todo
// o nada. El origin_ref de cada asiento es el ID de la compra.
func (uc *CreatePurchaseUseCase) CreatePurchase(ctx context.Context, in dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	if in.BranchID == "" || in.UserID == "" || len(in.Details) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for i := range in.Details {
		line := &in.Details[i]
		if line.ProductID == "" || line.Quantity <= 0 || !line.UnitPrice.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		if line.TotalPrice.IsZero() {
			line.TotalPrice = line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		}
		if !line.TotalPrice.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	// Referencias externas, solo lectura, antes de abrir la tx
	supplier, err := uc.resolveSupplier(in)
	if err != nil {
		return nil, err
	}
	branch, err := uc.branchRepo.GetByID(in.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}
	user, err := uc.userRepo.GetByID(in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	docStatus, err := uc.resolveDocumentStatus(in.DocumentStatusID)
	if err != nil {
		return nil, err
	}
	payStatus, err := uc.resolvePaymentStatus(in.PaymentStatusID)
	if err != nil {
		return nil, err
	}
	for _, line := range in.Details {
		product, err := uc.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	purchaseDate := now
	if in.PurchaseDate != nil {
		purchaseDate = *in.PurchaseDate
	}
	purchaseID := uuid.New().String()

	total := decimal.Zero
	for _, line := range in.Details {
		total = total.Add(line.TotalPrice)
	}

	purchase := &entity.Purchase{
		ID:               purchaseID,
		SupplierID:       supplier.ID,
		UserID:           in.UserID,
		BranchID:         in.BranchID,
		DocumentStatusID: docStatus.ID,
		PaymentStatusID:  payStatus.ID,
		PurchaseDate:     purchaseDate,
		TotalAmount:      total,
		CreatedAt:        now,
	}
	details := make([]*entity.PurchaseDetail, 0, len(in.Details))
	records := make([]inventory.MovementRecord, 0, len(in.Details))
	for _, line := range in.Details {
		details = append(details, &entity.PurchaseDetail{
			ID:         uuid.New().String(),
			PurchaseID: purchaseID,
			ProductID:  line.ProductID,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
			TotalPrice: line.TotalPrice,
		})
		records = append(records, inventory.MovementRecord{
			ProductID:   line.ProductID,
			BranchID:    in.BranchID,
			Type:        entity.MovementEntrada,
			Quantity:    line.Quantity,
			UserID:      in.UserID,
			Description: fmt.Sprintf("Compra #%s", purchaseID),
			OriginRef:   purchaseID,
			At:          now,
		})
	}

	// Unidad atómica: agregado + líneas + deltas de stock + asientos del libro
	err = uc.txRunner.RunPurchase(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
		purchaseRepo repository.PurchaseRepository,
	) error {
		if err := purchaseRepo.Create(purchase); err != nil {
			return err
		}
		for _, d := range details {
			if err := purchaseRepo.CreateDetail(d); err != nil {
				return err
			}
		}
		return inventory.ApplyMovementsInTx(movRepo, stockRepo, records)
	})
	if err != nil {
		return nil, err
	}

	return uc.toResponse(purchase, details, supplier, branch, docStatus, payStatus), nil
}

// resolveSupplier por ID existente, por email (reutiliza) o crea inline.
// Ante una violación de unicidad por carrera en la creación, relee por email:
// gana el primero persistido.
func (uc *CreatePurchaseUseCase) resolveSupplier(in dto.CreatePurchaseRequest) (*entity.Supplier, error) {
	if in.SupplierID != "" {
		supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, domain.ErrNotFound
		}
		return supplier, nil
	}
	if in.SupplierEmail == "" && in.SupplierName == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.SupplierEmail != "" {
		existing, err := uc.supplierRepo.GetByEmail(in.SupplierEmail)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
	}
	if in.SupplierName == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:          uuid.New().String(),
		Name:        in.SupplierName,
		ContactName: in.SupplierContact,
		Phone:       in.SupplierPhone,
		Email:       in.SupplierEmail,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.supplierRepo.Create(supplier); err != nil {
		if errors.Is(err, domain.ErrDuplicate) && in.SupplierEmail != "" {
			return uc.supplierRepo.GetByEmail(in.SupplierEmail)
		}
		return nil, err
	}
	return supplier, nil
}

func (uc *CreatePurchaseUseCase) resolveDocumentStatus(id string) (*entity.DocumentStatus, error) {
	if id == "" {
		status, err := uc.docStatRepo.GetByName(entity.DocumentStatusPendiente)
		if err != nil {
			return nil, err
		}
		if status == nil {
			return nil, domain.ErrNotFound
		}
		return status, nil
	}
	status, err := uc.docStatRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, domain.ErrNotFound
	}
	return status, nil
}

func (uc *CreatePurchaseUseCase) resolvePaymentStatus(id string) (*entity.PaymentStatus, error) {
	if id == "" {
		status, err := uc.payStatRepo.GetByName(entity.PaymentStatusPendiente)
		if err != nil {
			return nil, err
		}
		if status == nil {
			return nil, domain.ErrNotFound
		}
		return status, nil
	}
	status, err := uc.payStatRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, domain.ErrNotFound
	}
	return status, nil
}

func (uc *CreatePurchaseUseCase) toResponse(
	purchase *entity.Purchase,
	details []*entity.PurchaseDetail,
	supplier *entity.Supplier,
	branch *entity.Branch,
	docStatus *entity.DocumentStatus,
	payStatus *entity.PaymentStatus,
) *dto.PurchaseResponse {
	resp := &dto.PurchaseResponse{
		ID: purchase.ID,
		Supplier: dto.SupplierInfo{
			ID:          supplier.ID,
			Name:        supplier.Name,
			ContactName: supplier.ContactName,
			Phone:       supplier.Phone,
			Email:       supplier.Email,
		},
		Branch: dto.BranchInfo{
			ID:      branch.ID,
			Name:    branch.Name,
			Address: branch.Address,
			Phone:   branch.Phone,
		},
		UserID:         purchase.UserID,
		DocumentStatus: dto.StatusInfo{ID: docStatus.ID, Name: docStatus.Name},
		PaymentStatus:  dto.StatusInfo{ID: payStatus.ID, Name: payStatus.Name},
		PurchaseDate:   purchase.PurchaseDate,
		TotalAmount:    purchase.TotalAmount,
		Details:        make([]dto.PurchaseLineResponse, 0, len(details)),
	}
	for _, d := range details {
		resp.Details = append(resp.Details, dto.PurchaseLineResponse{
			ID:         d.ID,
			ProductID:  d.ProductID,
			Quantity:   d.Quantity,
			UnitPrice:  d.UnitPrice,
			TotalPrice: d.TotalPrice,
		})
	}
	return resp
}
