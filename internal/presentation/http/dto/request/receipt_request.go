package request

import "github.com/google/uuid"

// AddReceiptProductRequest represents a request to add a product to a receipt.
// The id field is the product id, matching the legacy wire format.
type AddReceiptProductRequest struct {
	ID       uuid.UUID `json:"id" binding:"required"`
	Quantity int       `json:"quantity" binding:"required,gt=0"`
}

// UpdateReceiptStatusRequest represents a receipt status transition request
type UpdateReceiptStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=closed"`
}
