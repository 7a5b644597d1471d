package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sskhi1/pos-system/internal/domain/entity"
)

// ReceiptRepository defines the receipt lifecycle operations.
//
// Every mutating call runs as a single storage transaction covering the
// receipt rows, its line items, and the sales report counters. Domain
// errors (does-not-exist, parameter-does-not-exist, receipt-closed) are
// raised here and translated to status codes at the HTTP boundary only.
type ReceiptRepository interface {
	// Create persists a new open receipt with no items and zero total.
	Create(ctx context.Context) (*entity.Receipt, error)

	// AddProduct merges quantity of the given product into the receipt,
	// grows the receipt total incrementally, and recognizes the added
	// amount as revenue on the sales report. Returns the updated receipt.
	AddProduct(ctx context.Context, receiptID, productID uuid.UUID, quantity int) (*entity.Receipt, error)

	// GetByID returns the receipt with its line items materialized.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)

	// Close transitions the receipt to closed and counts it on the sales
	// report. Closing an already-closed receipt is a no-op.
	Close(ctx context.Context, id uuid.UUID) error

	// Delete removes an open receipt together with its line items.
	// Closed receipts are rejected; recognized revenue is not reversed.
	Delete(ctx context.Context, id uuid.UUID) error
}
