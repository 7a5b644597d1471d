package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sskhi1/pos-system/internal/domain/enum"
	"gorm.io/gorm"
)

// Receipt represents one sale transaction with an open/closed lifecycle.
// Total is an accumulator: it grows by quantity x price-at-add on every
// add call rather than being resummed from the line items.
type Receipt struct {
	ID        uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	Status    enum.ReceiptStatus `gorm:"size:20;not null;default:'open'" json:"status"`
	Total     int64              `gorm:"not null;default:0" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`

	// Relationships
	Items []ReceiptItem `gorm:"foreignKey:ReceiptID" json:"products"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (r Receipt) MarshalJSON() ([]byte, error) {
	type Alias Receipt
	out := &struct {
		Alias
		Total float64 `json:"total"`
	}{
		Alias: Alias(r),
		Total: r.GetTotalDecimal(),
	}
	if out.Items == nil {
		out.Items = []ReceiptItem{}
	}
	return json.Marshal(out)
}

// BeforeCreate generates a UUID before creating a new receipt
func (r *Receipt) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Receipt model
func (Receipt) TableName() string {
	return "receipts"
}

// GetTotalDecimal returns the total as a decimal
func (r *Receipt) GetTotalDecimal() float64 {
	return float64(r.Total) / 100
}

// ItemFor returns the line item for the given product, or nil if absent
func (r *Receipt) ItemFor(productID uuid.UUID) *ReceiptItem {
	for i := range r.Items {
		if r.Items[i].ProductID == productID {
			return &r.Items[i]
		}
	}
	return nil
}

// ReceiptItem represents one product's accumulated quantity within a receipt.
// A receipt holds at most one item per product; repeat adds merge into it.
type ReceiptItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	ReceiptID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_receipt_product" json:"-"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_receipt_product" json:"-"`
	Quantity  int       `gorm:"not null" json:"-"`
	UnitPrice int64     `gorm:"not null" json:"-"` // Stored in cents, last written at add time
	Total     int64     `gorm:"not null" json:"-"` // Stored in cents

	// Relationships
	Receipt Receipt `gorm:"foreignKey:ReceiptID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

// MarshalJSON emits the legacy wire shape: the item's "id" is the product id
func (ri ReceiptItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		ID       uuid.UUID `json:"id"`
		Quantity int       `json:"quantity"`
		Price    float64   `json:"price"`
		Total    float64   `json:"total"`
	}{
		ID:       ri.ProductID,
		Quantity: ri.Quantity,
		Price:    float64(ri.UnitPrice) / 100,
		Total:    float64(ri.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new receipt item
func (ri *ReceiptItem) BeforeCreate(tx *gorm.DB) error {
	if ri.ID == uuid.Nil {
		ri.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ReceiptItem model
func (ReceiptItem) TableName() string {
	return "receipt_items"
}
