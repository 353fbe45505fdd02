package usecase

import (
	"strings"

	"github.com/google/uuid"

	"github.com/bwcsoft/zapateria-api/internal/application/dto"
	"github.com/bwcsoft/zapateria-api/internal/domain"
	"github.com/bwcsoft/zapateria-api/internal/domain/entity"
	"github.com/bwcsoft/zapateria-api/internal/domain/repository"
)

// CatalogUseCase administra los catálogos simples: marcas, categorías y tallas.
type CatalogUseCase struct {
	brandRepo    repository.BrandRepository
	categoryRepo repository.CategoryRepository
	sizeRepo     repository.SizeRepository
}

// NewCatalogUseCase construye el caso de uso con sus puertos de persistencia.
func NewCatalogUseCase(
	brandRepo repository.BrandRepository,
	categoryRepo repository.CategoryRepository,
	sizeRepo repository.SizeRepository,
) *CatalogUseCase {
	return &CatalogUseCase{brandRepo: brandRepo, categoryRepo: categoryRepo, sizeRepo: sizeRepo}
}

// ── Marcas ──────────────────────────────────────────────────────────────

func (uc *CatalogUseCase) CreateBrand(in *dto.NameRequest) (*dto.NamedRef, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	brand := &entity.Brand{ID: uuid.NewString(), Name: name}
	if err := uc.brandRepo.Create(brand); err != nil {
		return nil, err
	}
	return &dto.NamedRef{ID: brand.ID, Name: brand.Name}, nil
}

func (uc *CatalogUseCase) ListBrands() ([]dto.NamedRef, error) {
	brands, err := uc.brandRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.NamedRef, 0, len(brands))
	for _, b := range brands {
		out = append(out, dto.NamedRef{ID: b.ID, Name: b.Name})
	}
	return out, nil
}

func (uc *CatalogUseCase) UpdateBrand(id string, in *dto.NameRequest) (*dto.NamedRef, error) {
	brand, err := uc.brandRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, domain.ErrNotFound
	}
	brand.Name = strings.TrimSpace(in.Name)
	if err := uc.brandRepo.Update(brand); err != nil {
		return nil, err
	}
	return &dto.NamedRef{ID: brand.ID, Name: brand.Name}, nil
}

func (uc *CatalogUseCase) DeleteBrand(id string) error {
	brand, err := uc.brandRepo.GetByID(id)
	if err != nil {
		return err
	}
	if brand == nil {
		return domain.ErrNotFound
	}
	return uc.brandRepo.Delete(id)
}

// ── Categorías ──────────────────────────────────────────────────────────

func (uc *CatalogUseCase) CreateCategory(in *dto.NameRequest) (*dto.NamedRef, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	category := &entity.Category{ID: uuid.NewString(), Name: name}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return &dto.NamedRef{ID: category.ID, Name: category.Name}, nil
}

func (uc *CatalogUseCase) ListCategories() ([]dto.NamedRef, error) {
	categories, err := uc.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.NamedRef, 0, len(categories))
	for _, c := range categories {
		out = append(out, dto.NamedRef{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

func (uc *CatalogUseCase) UpdateCategory(id string, in *dto.NameRequest) (*dto.NamedRef, error) {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	category.Name = strings.TrimSpace(in.Name)
	if err := uc.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return &dto.NamedRef{ID: category.ID, Name: category.Name}, nil
}

func (uc *CatalogUseCase) DeleteCategory(id string) error {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	return uc.categoryRepo.Delete(id)
}

// ── Tallas ──────────────────────────────────────────────────────────────

func (uc *CatalogUseCase) CreateSize(in *dto.NameRequest) (*dto.NamedRef, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	size := &entity.Size{ID: uuid.NewString(), Name: name}
	if err := uc.sizeRepo.Create(size); err != nil {
		return nil, err
	}
	return &dto.NamedRef{ID: size.ID, Name: size.Name}, nil
}

func (uc *CatalogUseCase) ListSizes() ([]dto.NamedRef, error) {
	sizes, err := uc.sizeRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.NamedRef, 0, len(sizes))
	for _, s := range sizes {
		out = append(out, dto.NamedRef{ID: s.ID, Name: s.Name})
	}
	return out, nil
}

func (uc *CatalogUseCase) DeleteSize(id string) error {
	size, err := uc.sizeRepo.GetByID(id)
	if err != nil {
		return err
	}
	if size == nil {
		return domain.ErrNotFound
	}
	return uc.sizeRepo.Delete(id)
}
