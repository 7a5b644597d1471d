package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sskhi1/pos-system/internal/domain/entity"
	"github.com/sskhi1/pos-system/internal/domain/repository"
	"github.com/sskhi1/pos-system/pkg/apperror"
)

// ReceiptService handles the receipt lifecycle. The transactional
// merge-on-add and report bookkeeping live in the repository; the
// service validates inputs before they reach the store.
type ReceiptService struct {
	receiptRepo repository.ReceiptRepository
}

// NewReceiptService creates a new receipt service
func NewReceiptService(receiptRepo repository.ReceiptRepository) *ReceiptService {
	return &ReceiptService{receiptRepo: receiptRepo}
}

// CreateReceipt opens a new empty receipt
func (s *ReceiptService) CreateReceipt(ctx context.Context) (*entity.Receipt, error) {
	return s.receiptRepo.Create(ctx)
}

// AddProductInput represents the add-product-to-receipt input
type AddProductInput struct {
	ReceiptID uuid.UUID
	ProductID uuid.UUID
	Quantity  int
}

// AddProduct adds quantity of a product to an open receipt, merging with
// an existing line item for the same product
func (s *ReceiptService) AddProduct(ctx context.Context, input *AddProductInput) (*entity.Receipt, error) {
	if input.Quantity <= 0 {
		return nil, apperror.NewBadRequestError("Quantity must be a positive integer")
	}
	return s.receiptRepo.AddProduct(ctx, input.ReceiptID, input.ProductID, input.Quantity)
}

// GetReceipt retrieves a receipt with its line items
func (s *ReceiptService) GetReceipt(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	return s.receiptRepo.GetByID(ctx, id)
}

// CloseReceipt transitions a receipt to closed
func (s *ReceiptService) CloseReceipt(ctx context.Context, id uuid.UUID) error {
	return s.receiptRepo.Close(ctx, id)
}

// DeleteReceipt removes an open receipt and its line items
func (s *ReceiptService) DeleteReceipt(ctx context.Context, id uuid.UUID) error {
	return s.receiptRepo.Delete(ctx, id)
}
