// Package usecase agrupa los casos de uso CRUD del catálogo: productos,
// sucursales, marcas, categorías, tallas, proveedores y clientes.
package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bwcsoft/zapateria-api/internal/application/dto"
	"github.com/bwcsoft/zapateria-api/internal/domain"
	"github.com/bwcsoft/zapateria-api/internal/domain/entity"
	"github.com/bwcsoft/zapateria-api/internal/domain/repository"
)

// ProductUseCase aplica reglas de negocio para productos.
type ProductUseCase struct {
	productRepo  repository.ProductRepository
	brandRepo    repository.BrandRepository
	categoryRepo repository.CategoryRepository
	sizeRepo     repository.SizeRepository
}

// NewProductUseCase construye el caso de uso con sus puertos de persistencia.
func NewProductUseCase(
	productRepo repository.ProductRepository,
	brandRepo repository.BrandRepository,
	categoryRepo repository.CategoryRepository,
	sizeRepo repository.SizeRepository,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		brandRepo:    brandRepo,
		categoryRepo: categoryRepo,
		sizeRepo:     sizeRepo,
	}
}

// Create valida las referencias (marca, categoría, tallas) y persiste el producto.
func (uc *ProductUseCase) Create(in *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := uc.validateRefs(in); err != nil {
		return nil, err
	}
	product := &entity.Product{
		ID:            uuid.NewString(),
		Name:          strings.TrimSpace(in.Name),
		Description:   in.Description,
		BrandID:       in.BrandID,
		CategoryID:    in.CategoryID,
		SizeIDs:       in.SizeIDs,
		PurchasePrice: in.PurchasePrice,
		SalePrice:     in.SalePrice,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return uc.toResponse(product)
}

// GetByID obtiene un producto con marca, categoría y tallas resueltas.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(product)
}

// List lista productos paginados con referencias resueltas.
func (uc *ProductUseCase) List(limit, offset int) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		resp, err := uc.toResponse(p)
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

// Update reemplaza los campos editables del producto.
func (uc *ProductUseCase) Update(id string, in *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.validateRefs(in); err != nil {
		return nil, err
	}
	product.Name = strings.TrimSpace(in.Name)
	product.Description = in.Description
	product.BrandID = in.BrandID
	product.CategoryID = in.CategoryID
	product.SizeIDs = in.SizeIDs
	product.PurchasePrice = in.PurchasePrice
	product.SalePrice = in.SalePrice
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return uc.toResponse(product)
}

// Delete elimina el producto. El stock y los movimientos históricos no se tocan.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.Delete(id)
}

func (uc *ProductUseCase) validateRefs(in *dto.CreateProductRequest) error {
	brand, err := uc.brandRepo.GetByID(in.BrandID)
	if err != nil {
		return err
	}
	if brand == nil {
		return domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrInvalidInput
	}
	for _, sizeID := range in.SizeIDs {
		size, err := uc.sizeRepo.GetByID(sizeID)
		if err != nil {
			return err
		}
		if size == nil {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

func (uc *ProductUseCase) toResponse(p *entity.Product) (*dto.ProductResponse, error) {
	resp := &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		PurchasePrice: p.PurchasePrice,
		SalePrice:     p.SalePrice,
	}
	if brand, err := uc.brandRepo.GetByID(p.BrandID); err != nil {
		return nil, err
	} else if brand != nil {
		resp.Brand = &dto.NamedRef{ID: brand.ID, Name: brand.Name}
	}
	if category, err := uc.categoryRepo.GetByID(p.CategoryID); err != nil {
		return nil, err
	} else if category != nil {
		resp.Category = &dto.NamedRef{ID: category.ID, Name: category.Name}
	}
	for _, sizeID := range p.SizeIDs {
		size, err := uc.sizeRepo.GetByID(sizeID)
		if err != nil {
			return nil, err
		}
		if size != nil {
			resp.Sizes = append(resp.Sizes, dto.NamedRef{ID: size.ID, Name: size.Name})
		}
	}
	return resp, nil
}
