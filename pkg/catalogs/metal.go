package catalogs

// Metal represents a metal record with its nested purity levels.
// Purity level order within a metal is meaningful and preserved from the
// source (it drives option ordering and auto-selection).
type Metal struct {
	ID           MetalID       `json:"id" yaml:"id"`                      // Unique metal identifier
	Name         string        `json:"name" yaml:"name"`                  // Display name (e.g. "White Gold")
	PurityLevels []PurityLevel `json:"purityLevels" yaml:"purity_levels"` // Karat grades offered for this metal
}

// PurityLevel represents a karat grade of a metal carrying its own
// price multiplier.
type PurityLevel struct {
	ID              PurityLevelID `json:"id" yaml:"id"`
	Karat           float64       `json:"karat" yaml:"karat"`
	PriceMultiplier float64       `json:"priceMultiplier,omitempty" yaml:"price_multiplier,omitempty"` // 0 means unset; treated as 1.0
	Active          *bool         `json:"active,omitempty" yaml:"active,omitempty"`                    // nil means active
}

// IsActive reports whether the purity level is selectable.
// An absent active flag counts as active.
func (pl PurityLevel) IsActive() bool {
	return pl.Active == nil || *pl.Active
}

// Multiplier returns the effective price multiplier, defaulting to 1
// when the record carries none.
func (pl PurityLevel) Multiplier() float64 {
	if pl.PriceMultiplier <= 0 {
		return 1
	}
	return pl.PriceMultiplier
}
