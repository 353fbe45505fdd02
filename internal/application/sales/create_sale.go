// Package sales orquesta la creación de ventas: guard de consistencia sobre
// todas las líneas, persistencia del agregado y salida de stock con su asiento
// en el libro, todo dentro de una unidad atómica.
package sales

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bwcsoft/zapateria-api/internal/application/dto"
	"github.com/bwcsoft/zapateria-api/internal/application/inventory"
	"github.com/bwcsoft/zapateria-api/internal/domain"
	"github.com/bwcsoft/zapateria-api/internal/domain/entity"
	"github.com/bwcsoft/zapateria-api/internal/domain/repository"
)

// CreateSaleUseCase orquestador de ventas. El usuario actor llega como
// parámetro explícito resuelto por la capa HTTP desde el token, nunca como
// campo libre del request.
type CreateSaleUseCase struct {
	txRunner     SaleTxRunner
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	branchRepo   repository.BranchRepository
	userRepo     repository.UserRepository
	docStatRepo  repository.DocumentStatusRepository
	saleRepo     repository.SaleRepository
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(
	txRunner SaleTxRunner,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	branchRepo repository.BranchRepository,
	userRepo repository.UserRepository,
	docStatRepo repository.DocumentStatusRepository,
	saleRepo repository.SaleRepository,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		txRunner:     txRunner,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		branchRepo:   branchRepo,
		userRepo:     userRepo,
		docStatRepo:  docStatRepo,
		saleRepo:     saleRepo,
	}
}

// CreateSale resuelve cliente (ID, inline o mostrador), sucursal y actor,
// corre el guard sobre todas las líneas y persiste agregado + deltas SALIDA +
// asientos con el ID de la venta como origin_ref. Si alguna línea excede el
// stock disponible, la venta completa se rechaza y nada queda persistido,
// aunque el resto de líneas sea satisfacible.
func (uc *CreateSaleUseCase) CreateSale(ctx context.Context, actorUserID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if actorUserID == "" {
		return nil, domain.ErrUnauthorized
	}
	if in.BranchID == "" || len(in.Details) == 0 {
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

	user, err := uc.userRepo.GetByID(actorUserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	customer, err := uc.resolveCustomer(in)
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
	docStatus, err := uc.docStatRepo.GetByName(entity.DocumentStatusCompletado)
	if err != nil {
		return nil, err
	}
	if docStatus == nil {
		return nil, domain.ErrNotFound
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
	saleID := uuid.New().String()

	total := decimal.Zero
	for _, line := range in.Details {
		total = total.Add(line.TotalPrice)
	}

	sale := &entity.Sale{
		ID:               saleID,
		CustomerID:       customer.ID,
		UserID:           actorUserID,
		BranchID:         in.BranchID,
		DocumentStatusID: docStatus.ID,
		SaleDate:         now,
		TotalAmount:      total,
		CreatedAt:        now,
	}
	details := make([]*entity.SaleDetail, 0, len(in.Details))
	records := make([]inventory.MovementRecord, 0, len(in.Details))
	for _, line := range in.Details {
		details = append(details, &entity.SaleDetail{
			ID:         uuid.New().String(),
			SaleID:     saleID,
			ProductID:  line.ProductID,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
			TotalPrice: line.TotalPrice,
		})
		records = append(records, inventory.MovementRecord{
			ProductID:   line.ProductID,
			BranchID:    in.BranchID,
			Type:        entity.MovementSalida,
			Quantity:    line.Quantity,
			UserID:      actorUserID,
			Description: fmt.Sprintf("Venta #%s", saleID),
			OriginRef:   saleID,
			At:          now,
		})
	}

	// Unidad atómica: guard + deltas + asientos primero (si alguna línea no
	// alcanza, nada se persiste), luego agregado y líneas.
	err = uc.txRunner.RunSale(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
		saleRepo repository.SaleRepository,
	) error {
		if err := inventory.ApplyMovementsInTx(movRepo, stockRepo, records); err != nil {
			return err
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for _, d := range details {
			if err := saleRepo.CreateDetail(d); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.toResponse(sale, details, customer, branch, docStatus), nil
}

// resolveCustomer por ID, inline (customer_name crea uno nuevo) o cliente
// mostrador si el request no trae ninguno.
func (uc *CreateSaleUseCase) resolveCustomer(in dto.CreateSaleRequest) (*entity.Customer, error) {
	if in.CustomerID != "" {
		customer, err := uc.customerRepo.GetByID(in.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.ErrNotFound
		}
		return customer, nil
	}
	if strings.TrimSpace(in.CustomerName) != "" {
		now := time.Now()
		customer := &entity.Customer{
			ID:        uuid.New().String(),
			FirstName: strings.TrimSpace(in.CustomerName),
			Email:     in.CustomerEmail,
			Phone:     in.CustomerPhone,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.customerRepo.Create(customer); err != nil {
			return nil, err
		}
		return customer, nil
	}
	general, err := uc.customerRepo.GetGeneral()
	if err != nil {
		return nil, err
	}
	if general == nil {
		return nil, domain.ErrNotFound // cliente mostrador no sembrado
	}
	return general, nil
}

func (uc *CreateSaleUseCase) toResponse(
	sale *entity.Sale,
	details []*entity.SaleDetail,
	customer *entity.Customer,
	branch *entity.Branch,
	docStatus *entity.DocumentStatus,
) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID: sale.ID,
		Customer: dto.CustomerInfo{
			ID:    customer.ID,
			Name:  customer.FullName(),
			Email: customer.Email,
			Phone: customer.Phone,
		},
		Branch: dto.BranchInfo{
			ID:      branch.ID,
			Name:    branch.Name,
			Address: branch.Address,
			Phone:   branch.Phone,
		},
		UserID:         sale.UserID,
		DocumentStatus: dto.StatusInfo{ID: docStatus.ID, Name: docStatus.Name},
		SaleDate:       sale.SaleDate,
		TotalAmount:    sale.TotalAmount,
		Details:        make([]dto.SaleLineResponse, 0, len(details)),
	}
	for _, d := range details {
		resp.Details = append(resp.Details, dto.SaleLineResponse{
			ID:         d.ID,
			ProductID:  d.ProductID,
			Quantity:   d.Quantity,
			UnitPrice:  d.UnitPrice,
			TotalPrice: d.TotalPrice,
		})
	}
	return resp
}
