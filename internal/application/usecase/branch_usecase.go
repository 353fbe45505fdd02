package usecase

import (
	"strings"

	"github.com/google/uuid"

	"github.com/bwcsoft/zapateria-api/internal/application/dto"
	"github.com/bwcsoft/zapateria-api/internal/domain"
	"github.com/bwcsoft/zapateria-api/internal/domain/entity"
	"github.com/bwcsoft/zapateria-api/internal/domain/repository"
)

// BranchUseCase administra sucursales.
type BranchUseCase struct {
	branchRepo repository.BranchRepository
}

// NewBranchUseCase construye el caso de uso con el puerto de persistencia.
func NewBranchUseCase(branchRepo repository.BranchRepository) *BranchUseCase {
	return &BranchUseCase{branchRepo: branchRepo}
}

// Create persiste una sucursal nueva, activa por defecto.
func (uc *BranchUseCase) Create(in *dto.CreateBranchRequest) (*dto.BranchInfo, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	state := true
	if in.State != nil {
		state = *in.State
	}
	branch := &entity.Branch{
		ID:      uuid.NewString(),
		Name:    name,
		Address: in.Address,
		Phone:   in.Phone,
		State:   state,
	}
	if err := uc.branchRepo.Create(branch); err != nil {
		return nil, err
	}
	return toBranchInfo(branch), nil
}

// GetByID obtiene una sucursal por ID.
func (uc *BranchUseCase) GetByID(id string) (*dto.BranchInfo, error) {
	branch, err := uc.branchRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}
	return toBranchInfo(branch), nil
}

// List lista todas las sucursales.
func (uc *BranchUseCase) List() ([]dto.BranchInfo, error) {
	branches, err := uc.branchRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.BranchInfo, 0, len(branches))
	for _, b := range branches {
		out = append(out, *toBranchInfo(b))
	}
	return out, nil
}

// Update reemplaza los campos editables de la sucursal.
func (uc *BranchUseCase) Update(id string, in *dto.CreateBranchRequest) (*dto.BranchInfo, error) {
	branch, err := uc.branchRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}
	branch.Name = strings.TrimSpace(in.Name)
	branch.Address = in.Address
	branch.Phone = in.Phone
	if in.State != nil {
		branch.State = *in.State
	}
	if err := uc.branchRepo.Update(branch); err != nil {
		return nil, err
	}
	return toBranchInfo(branch), nil
}

// Delete elimina la sucursal. Los movimientos históricos no se tocan.
func (uc *BranchUseCase) Delete(id string) error {
	branch, err := uc.branchRepo.GetByID(id)
	if err != nil {
		return err
	}
	if branch == nil {
		return domain.ErrNotFound
	}
	return uc.branchRepo.Delete(id)
}

func toBranchInfo(b *entity.Branch) *dto.BranchInfo {
	return &dto.BranchInfo{
		ID:      b.ID,
		Name:    b.Name,
		Address: b.Address,
		Phone:   b.Phone,
	}
}
