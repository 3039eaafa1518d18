package catalogs

// Stone represents a center stone (carat) record.
// Catalog order is meaningful: stone name resolution takes the first match
// in catalog order, so the loaded slice must preserve source order.
type Stone struct {
	ID     StoneID `json:"id" yaml:"id"`
	Name   string  `json:"name" yaml:"name"` // Display name (e.g. "1.5 CT")
	Price  float64 `json:"price" yaml:"price"`
	Active *bool   `json:"active,omitempty" yaml:"active,omitempty"` // nil means active
}

// IsActive reports whether the stone is offered for selection.
func (s Stone) IsActive() bool {
	return s.Active == nil || *s.Active
}
