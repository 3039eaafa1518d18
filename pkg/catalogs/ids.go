package catalogs

// MetalID uniquely identifies a metal record.
type MetalID string

// String returns the string representation of a MetalID.
func (id MetalID) String() string {
	return string(id)
}

// PurityLevelID uniquely identifies a purity level within a metal.
type PurityLevelID string

// String returns the string representation of a PurityLevelID.
func (id PurityLevelID) String() string {
	return string(id)
}

// StoneID uniquely identifies a stone record.
type StoneID string

// String returns the string representation of a StoneID.
func (id StoneID) String() string {
	return string(id)
}

// CategoryID uniquely identifies a category record.
type CategoryID string

// String returns the string representation of a CategoryID.
func (id CategoryID) String() string {
	return string(id)
}

// ProductID uniquely identifies a product record.
type ProductID string

// String returns the string representation of a ProductID.
func (id ProductID) String() string {
	return string(id)
}
