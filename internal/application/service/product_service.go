package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sskhi1/pos-system/internal/domain/entity"
	"github.com/sskhi1/pos-system/internal/domain/repository"
	"github.com/sskhi1/pos-system/pkg/apperror"
)

// ProductService handles catalog product operations
type ProductService struct {
	productRepo repository.ProductRepository
	unitRepo    repository.UnitRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository, unitRepo repository.UnitRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		unitRepo:    unitRepo,
	}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	UnitID  uuid.UUID
	Name    string
	Barcode string
	Price   float64
}

// CreateProduct creates a catalog product. The barcode must be unique and
// the referenced unit must exist.
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	existing, err := s.productRepo.GetByBarcode(ctx, input.Barcode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewExistsError("Product", "barcode", input.Barcode)
	}

	unit, err := s.unitRepo.GetByID(ctx, input.UnitID)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, apperror.NewParameterDoesNotExistError("Unit", input.UnitID)
	}

	product := &entity.Product{
		UnitID:  input.UnitID,
		Name:    input.Name,
		Barcode: input.Barcode,
	}
	product.SetPriceFromDecimal(input.Price)

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewDoesNotExistError("Product", id)
	}
	return product, nil
}

// ListProducts returns all catalog products
func (s *ProductService) ListProducts(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.GetAll(ctx)
}

// UpdateProductPrice sets a new catalog price for the product. Open
// receipts holding the product pick the new price up on their next add
// or read when the pricing mode is "current".
func (s *ProductService) UpdateProductPrice(ctx context.Context, id uuid.UUID, newPrice float64) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewDoesNotExistError("Product", id)
	}
	return s.productRepo.UpdatePrice(ctx, id, entity.CentsFromDecimal(newPrice))
}

// DeleteProduct removes a product from the catalog
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewDoesNotExistError("Product", id)
	}
	return s.productRepo.Delete(ctx, id)
}
