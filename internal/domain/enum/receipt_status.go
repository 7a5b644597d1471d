package enum

// ReceiptStatus represents the lifecycle state of a receipt
type ReceiptStatus string

const (
	ReceiptStatusOpen   ReceiptStatus = "open"
	ReceiptStatusClosed ReceiptStatus = "closed"
)

// IsClosed reports whether the receipt can no longer accept mutations
func (s ReceiptStatus) IsClosed() bool {
	return s == ReceiptStatusClosed
}
