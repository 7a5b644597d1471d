package enum

// PricingMode selects how receipt line prices are resolved.
//
// PricingModeCurrent re-reads the catalog price on every add and on
// every read, so merged line totals absorb catalog price changes.
// PricingModeSnapshot pins the price at the first add of a product.
type PricingMode string

const (
	PricingModeCurrent  PricingMode = "current"
	PricingModeSnapshot PricingMode = "snapshot"
)

// Valid reports whether the mode is a known pricing mode
func (m PricingMode) Valid() bool {
	return m == PricingModeCurrent || m == PricingModeSnapshot
}
