// Package catalogs provides the read-only domain catalog for the atelier
// storefront: metals with purity levels, center stones, categories, and
// products. Catalogs load once per session (from YAML files, any fs.FS, or
// directly from API responses) and are read-only inputs to the variant
// engine.
//
// Example usage:
//
//	// Create a file-based catalog
//	catalog, err := catalogs.New(catalogs.WithPath("./catalog"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, metal := range catalog.Metals() {
//	    fmt.Printf("Metal: %s\n", metal.Name)
//	}
//
//	// Create a memory catalog seeded from API responses
//	catalog, err := catalogs.New(
//	    catalogs.WithMetals(metals),
//	    catalogs.WithStones(stones),
//	)
package catalogs

import (
	"github.com/gemfold/atelier/pkg/errors"
)

// Reader provides read-only access to catalog data.
type Reader interface {
	// Lists all metals, stones, categories, and products in source order
	Metals() []Metal
	Stones() []Stone
	Categories() *Categories
	Products() []Product

	// Gets a metal, stone, or product by id
	Metal(id MetalID) (Metal, error)
	Stone(id StoneID) (Stone, error)
	Product(id ProductID) (Product, error)
}

// Compile-time interface check to ensure proper implementation.
var _ Reader = (*catalog)(nil)

// catalog is the single concrete implementation of the Reader interface.
// It can work as:
// - Memory catalog (readFS == nil, seeded via With* options)
// - Files catalog (readFS is os.DirFS or any fs.FS implementation).
type catalog struct {
	options *catalogOptions

	metals     []Metal
	stones     []Stone
	categories *Categories
	products   []Product

	metalsByID   map[MetalID]Metal
	stonesByID   map[StoneID]Stone
	productsByID map[ProductID]Product
}

// New creates a new catalog with the given options.
// WithPath(path) or WithFS(fsys) auto-load from YAML files;
// WithMetals/WithStones/WithCategories/WithProducts seed a memory catalog.
func New(opts ...Option) (Reader, error) {
	options := catalogDefaults().apply(opts...)
	cat := &catalog{
		options:    options,
		metals:     options.metals,
		stones:     options.stones,
		categories: NewCategories(options.categories),
		products:   options.products,
	}

	// Auto-load if configured with a filesystem
	if cat.options.readFS != nil {
		if err := cat.load(); err != nil {
			return nil, errors.WrapResource("load", "catalog", "", err)
		}
	}

	cat.index()
	return cat, nil
}

// index builds the id lookup maps from the ordered slices.
func (c *catalog) index() {
	c.metalsByID = make(map[MetalID]Metal, len(c.metals))
	for _, m := range c.metals {
		c.metalsByID[m.ID] = m
	}
	c.stonesByID = make(map[StoneID]Stone, len(c.stones))
	for _, s := range c.stones {
		c.stonesByID[s.ID] = s
	}
	c.productsByID = make(map[ProductID]Product, len(c.products))
	for _, p := range c.products {
		c.productsByID[p.ID] = p
	}
}

// Metals returns all metals in source order.
func (c *catalog) Metals() []Metal {
	out := make([]Metal, len(c.metals))
	copy(out, c.metals)
	return out
}

// Stones returns all stones in source order.
func (c *catalog) Stones() []Stone {
	out := make([]Stone, len(c.stones))
	copy(out, c.stones)
	return out
}

// Categories returns the category collection.
func (c *catalog) Categories() *Categories {
	return c.categories
}

// Products returns all products in source order.
func (c *catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Metal returns the metal with the given id.
func (c *catalog) Metal(id MetalID) (Metal, error) {
	if m, ok := c.metalsByID[id]; ok {
		return m, nil
	}
	return Metal{}, errors.NewNotFoundError("metal", id.String())
}

// Stone returns the stone with the given id.
func (c *catalog) Stone(id StoneID) (Stone, error) {
	if s, ok := c.stonesByID[id]; ok {
		return s, nil
	}
	return Stone{}, errors.NewNotFoundError("stone", id.String())
}

// Product returns the product with the given id.
func (c *catalog) Product(id ProductID) (Product, error) {
	if p, ok := c.productsByID[id]; ok {
		return p, nil
	}
	return Product{}, errors.NewNotFoundError("product", id.String())
}
