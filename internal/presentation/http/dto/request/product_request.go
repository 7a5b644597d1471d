package request

import "github.com/google/uuid"

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	UnitID  uuid.UUID `json:"unit_id" binding:"required"`
	Name    string    `json:"name" binding:"required,min=1,max=255"`
	Barcode string    `json:"barcode" binding:"required,max=100"`
	Price   float64   `json:"price" binding:"min=0"`
}

// UpdateProductPriceRequest represents a product price update request
type UpdateProductPriceRequest struct {
	NewPrice float64 `json:"new_price" binding:"min=0"`
}
