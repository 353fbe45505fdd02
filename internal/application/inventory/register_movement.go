package inventory

import (
	"context"
	"time"

	"github.com/bwcsoft/zapateria-api/internal/application/dto"
	"github.com/bwcsoft/zapateria-api/internal/domain"
	"github.com/bwcsoft/zapateria-api/internal/domain/entity"
	"github.com/bwcsoft/zapateria-api/internal/domain/repository"
)

// TipoTransferencia alias aceptado en el request para registrar un traslado
// entre sucursales (se expande a TRANSFERENCIA_SALIDA + TRANSFERENCIA_ENTRADA).
const TipoTransferencia = "TRANSFERENCIA"

// RegisterMovementUseCase registra ajustes y traslados de inventario de forma
// transaccional. Mutación de stock y asiento del libro viajan siempre juntos:
// no existe un camino que registre el movimiento sin aplicar el delta.
type RegisterMovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	branchRepo  repository.BranchRepository
	userRepo    repository.UserRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	branchRepo repository.BranchRepository,
	userRepo repository.UserRepository,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		branchRepo:  branchRepo,
		userRepo:    userRepo,
	}
}

// RegisterMovement valida referencias y tipo, y aplica el movimiento dentro de
// la unidad atómica. Tipos aceptados: AJUSTE_POSITIVO, AJUSTE_NEGATIVO y
// TRANSFERENCIA (dos asientos, salida en origen y entrada en destino).
// ENTRADA y SALIDA no se registran por aquí: llegan por los orquestadores de
// compra y venta con su documento de origen.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, userID string, in dto.RegisterMovementRequest) error {
	if in.ProductID == "" || in.Quantity <= 0 {
		return domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}

	now := time.Now()

	switch in.Type {
	case string(entity.MovementAjustePositivo), string(entity.MovementAjusteNegativo):
		if in.BranchID == "" {
			return domain.ErrInvalidInput
		}
		branch, err := uc.branchRepo.GetByID(in.BranchID)
		if err != nil {
			return err
		}
		if branch == nil {
			return domain.ErrNotFound
		}
		rec := MovementRecord{
			ProductID:   in.ProductID,
			BranchID:    in.BranchID,
			Type:        entity.MovementType(in.Type),
			Quantity:    in.Quantity,
			UserID:      userID,
			Description: in.Description,
			OriginRef:   "Ajuste manual",
			At:          now,
		}
		return uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, stockRepo repository.StockRepository) error {
			return ApplyMovementsInTx(movRepo, stockRepo, []MovementRecord{rec})
		})

	case TipoTransferencia:
		if in.FromBranchID == "" || in.ToBranchID == "" || in.FromBranchID == in.ToBranchID {
			return domain.ErrInvalidInput
		}
		from, err := uc.branchRepo.GetByID(in.FromBranchID)
		if err != nil {
			return err
		}
		to, err := uc.branchRepo.GetByID(in.ToBranchID)
		if err != nil {
			return err
		}
		if from == nil || to == nil {
			return domain.ErrNotFound
		}
		recs := []MovementRecord{
			{
				ProductID:   in.ProductID,
				BranchID:    in.FromBranchID,
				Type:        entity.MovementTransferenciaSalida,
				Quantity:    in.Quantity,
				UserID:      userID,
				Description: in.Description,
				OriginRef:   "Traslado a " + to.Name,
				At:          now,
			},
			{
				ProductID:   in.ProductID,
				BranchID:    in.ToBranchID,
				Type:        entity.MovementTransferenciaEntrada,
				Quantity:    in.Quantity,
				UserID:      userID,
				Description: in.Description,
				OriginRef:   "Traslado desde " + from.Name,
				At:          now,
			},
		}
		return uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, stockRepo repository.StockRepository) error {
			return ApplyMovementsInTx(movRepo, stockRepo, recs)
		})

	default:
		return domain.ErrInvalidInput
	}
}
