package variant

// ResolvePrice computes the deterministic unit price for a configuration:
//
//	(basePrice + stonePrice) * metalMultiplier
//
// A zero or negative multiplier means "no metal premium" and is treated as
// 1; a missing stone contributes 0. No rounding is applied here; currency
// formatting is a presentation concern. Every surface that shows or
// submits a price must go through this function so display and submission
// always agree.
func ResolvePrice(basePrice, metalMultiplier, stonePrice float64) float64 {
	if metalMultiplier <= 0 {
		metalMultiplier = 1
	}
	return (basePrice + stonePrice) * metalMultiplier
}
