package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sskhi1/pos-system/internal/domain/entity"
)

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetByBarcode(ctx context.Context, barcode string) (*entity.Product, error)
	GetAll(ctx context.Context) ([]entity.Product, error)
	UpdatePrice(ctx context.Context, id uuid.UUID, price int64) error
	Delete(ctx context.Context, id uuid.UUID) error
}
