package entity

import "encoding/json"

// SalesReportID is the fixed primary key of the single sales report row
const SalesReportID uint = 1

// SalesReport is the store-wide running counter of closed receipts and
// cumulative revenue. Revenue is recognized at add-product time and is
// never reversed; both counters are monotonically non-decreasing.
type SalesReport struct {
	ID        uint  `gorm:"primaryKey" json:"-"`
	NReceipts int64 `gorm:"not null;default:0" json:"n_receipts"`
	Revenue   int64 `gorm:"not null;default:0" json:"-"` // Stored in cents, excluded from JSON
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (sr SalesReport) MarshalJSON() ([]byte, error) {
	type Alias SalesReport
	return json.Marshal(&struct {
		Alias
		Revenue float64 `json:"revenue"`
	}{
		Alias:   Alias(sr),
		Revenue: float64(sr.Revenue) / 100,
	})
}

// TableName returns the table name for the SalesReport model
func (SalesReport) TableName() string {
	return "sales_reports"
}
