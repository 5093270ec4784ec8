package usecase

import (
	"context"
	"fmt"

	"github.com/tu-usuario/ventas-pos/internal/application/dto"
	"github.com/tu-usuario/ventas-pos/internal/domain"
	"github.com/tu-usuario/ventas-pos/internal/domain/entity"
	"github.com/tu-usuario/ventas-pos/internal/domain/repository"
)

// ProductUseCase operaciones de catálogo sobre productos.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase crea el caso de uso de productos.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

func (uc *ProductUseCase) Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, err := uc.productRepo.GetBySKU(req.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: ya existe un producto con SKU %s", domain.ErrDuplicate, req.SKU)
	}

	product := productFromRequest(req)
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

func (uc *ProductUseCase) Update(ctx context.Context, id int64, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	updated := productFromRequest(req)
	updated.ID = product.ID
	if err := uc.productRepo.Update(updated); err != nil {
		return nil, err
	}
	return toProductResponse(updated), nil
}

func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.Delete(id)
}

func (uc *ProductUseCase) Get(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

func (uc *ProductUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.ProductResponse, error) {
	products, err := uc.productRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

func productFromRequest(req *dto.CreateProductRequest) *entity.Product {
	return &entity.Product{
		SKU:               req.SKU,
		Name:              req.Name,
		Price:             req.Price,
		SalePrice:         req.SalePrice,
		CostBase:          req.CostBase,
		UtilityPercentage: req.UtilityPercentage,
		IncludeIVA:        req.IncludeIVA,
		Discounts:         req.Discounts,
		Stock:             req.Stock,
		MinStock:          req.MinStock,
		Supplier:          req.Supplier,
		Brand:             req.Brand,
		Category:          req.Category,
		Department:        req.Department,
	}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:                p.ID,
		SKU:               p.SKU,
		Name:              p.Name,
		Price:             p.Price,
		SalePrice:         p.SalePrice,
		CostBase:          p.CostBase,
		UtilityPercentage: p.UtilityPercentage,
		IncludeIVA:        p.IncludeIVA,
		Discounts:         p.Discounts,
		Stock:             p.Stock,
		MinStock:          p.MinStock,
		Supplier:          p.Supplier,
		Brand:             p.Brand,
		Category:          p.Category,
		Department:        p.Department,
	}
}
