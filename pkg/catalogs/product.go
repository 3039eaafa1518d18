package catalogs

import (
	"encoding/json"
)

// Product represents a storefront product. Price is the base unit price
// before any metal multiplier or stone premium is applied.
type Product struct {
	ID          ProductID        `json:"id" yaml:"id"`
	Name        string           `json:"name" yaml:"name"`
	Price       float64          `json:"price" yaml:"price"`
	Metals      []MetalRef       `json:"metals,omitempty" yaml:"metals,omitempty"`        // Allow-list of offered metals
	StoneType   *StoneRef        `json:"stoneType,omitempty" yaml:"stone_type,omitempty"` // Default center stone
	Category    *ProductCategory `json:"category,omitempty" yaml:"category,omitempty"`
	IsBand      bool             `json:"isBand,omitempty" yaml:"is_band,omitempty"`
	RingSizes   []string         `json:"ringSizes,omitempty" yaml:"ring_sizes,omitempty"`
	Description json.RawMessage  `json:"description,omitempty" yaml:"-"` // Rich-text document tree; rendered by an external collaborator
}

// ProductCategory is the category reference carried on a product.
type ProductCategory struct {
	Name   string      `json:"name" yaml:"name"`
	Parent *CategoryID `json:"parent,omitempty" yaml:"parent,omitempty"`
}

// HasMetals reports whether the product declares at least one metal.
// Products with no configured metals never require a metal selection.
func (p *Product) HasMetals() bool {
	return p != nil && len(p.Metals) > 0
}

// MetalIDs returns the normalized metal allow-list, resolving each entry
// whether it arrived as a populated record or a bare id.
func (p *Product) MetalIDs() []MetalID {
	if p == nil || len(p.Metals) == 0 {
		return nil
	}
	ids := make([]MetalID, 0, len(p.Metals))
	for _, ref := range p.Metals {
		if id := ref.MetalID(); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// MetalRef is a product's reference to a metal. The storefront API returns
// either a bare id string or a populated metal object depending on the
// endpoint, so both forms decode into the same normalized value.
type MetalRef struct {
	ID    MetalID `json:"id" yaml:"id"`
	Metal *Metal  `json:"-" yaml:"-"` // Populated record, when the source embedded one
}

// MetalID returns the referenced metal's id regardless of which form the
// reference arrived in.
func (r MetalRef) MetalID() MetalID {
	if r.ID != "" {
		return r.ID
	}
	if r.Metal != nil {
		return r.Metal.ID
	}
	return ""
}

// UnmarshalJSON accepts either a bare id string or a metal object.
func (r *MetalRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		r.ID = MetalID(id)
		r.Metal = nil
		return nil
	}

	var metal Metal
	if err := json.Unmarshal(data, &metal); err != nil {
		return err
	}
	r.ID = metal.ID
	r.Metal = &metal
	return nil
}

// MarshalJSON writes the normalized id form.
func (r MetalRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.MetalID().String())
}

// UnmarshalYAML accepts either a bare id string or a metal object,
// mirroring the JSON behavior for catalog files.
func (r *MetalRef) UnmarshalYAML(unmarshal func(any) error) error {
	var id string
	if err := unmarshal(&id); err == nil {
		r.ID = MetalID(id)
		r.Metal = nil
		return nil
	}

	var metal Metal
	if err := unmarshal(&metal); err != nil {
		return err
	}
	r.ID = metal.ID
	r.Metal = &metal
	return nil
}

// StoneRef is a product's default stone reference. Sources carry either a
// bare name string or an object with id, name, and price.
type StoneRef struct {
	ID    *StoneID `json:"id,omitempty" yaml:"id,omitempty"`
	Name  string   `json:"name" yaml:"name"`
	Price float64  `json:"price,omitempty" yaml:"price,omitempty"`
}

// stoneRefObject mirrors StoneRef without methods, for object decoding.
type stoneRefObject struct {
	ID    *StoneID `json:"id,omitempty" yaml:"id,omitempty"`
	Name  string   `json:"name" yaml:"name"`
	Price float64  `json:"price,omitempty" yaml:"price,omitempty"`
}

// UnmarshalJSON accepts either a bare name string or a stone object.
func (r *StoneRef) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*r = StoneRef{Name: name}
		return nil
	}

	var obj stoneRefObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*r = StoneRef(obj)
	return nil
}

// UnmarshalYAML accepts either a bare name string or a stone object.
func (r *StoneRef) UnmarshalYAML(unmarshal func(any) error) error {
	var name string
	if err := unmarshal(&name); err == nil {
		*r = StoneRef{Name: name}
		return nil
	}

	var obj stoneRefObject
	if err := unmarshal(&obj); err != nil {
		return err
	}
	*r = StoneRef(obj)
	return nil
}
