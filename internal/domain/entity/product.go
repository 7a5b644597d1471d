package entity

import (
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a catalog product
type Product struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UnitID    uuid.UUID `gorm:"type:uuid;not null;index" json:"unit_id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Barcode   string    `gorm:"size:100;unique;not null" json:"barcode"`
	Price     int64     `gorm:"not null;default:0" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Unit Unit `gorm:"foreignKey:UnitID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(p),
		Price: p.GetPriceDecimal(),
	})
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// GetPriceDecimal returns the price as a decimal (for display)
func (p *Product) GetPriceDecimal() float64 {
	return float64(p.Price) / 100
}

// SetPriceFromDecimal sets the price from a decimal value
func (p *Product) SetPriceFromDecimal(price float64) {
	p.Price = CentsFromDecimal(price)
}

// CentsFromDecimal converts a decimal monetary amount to integer cents
func CentsFromDecimal(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
