package catalogs

import (
	"io/fs"
	"os"
)

// catalogOptions is a struct that contains the options for the catalog.
type catalogOptions struct {
	readFS fs.FS // For reading catalog files

	// Seed data for memory catalogs
	metals     []Metal
	stones     []Stone
	categories []Category
	products   []Product
}

// apply applies the given options to the catalog options.
func (c *catalogOptions) apply(opts ...Option) *catalogOptions {
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// catalogDefaults returns the default options for a catalog.
func catalogDefaults() *catalogOptions {
	return &catalogOptions{}
}

// Option configures a catalog.
type Option func(*catalogOptions)

// WithFS configures the catalog to use a custom fs.FS for reading.
func WithFS(fsys fs.FS) Option {
	return func(c *catalogOptions) {
		c.readFS = fsys
	}
}

// WithPath configures the catalog to use a directory path for reading.
// This creates an os.DirFS under the hood.
func WithPath(path string) Option {
	return func(c *catalogOptions) {
		c.readFS = os.DirFS(path)
	}
}

// WithMetals seeds the catalog with metal records, preserving order.
func WithMetals(metals []Metal) Option {
	return func(c *catalogOptions) {
		c.metals = metals
	}
}

// WithStones seeds the catalog with stone records, preserving order.
func WithStones(stones []Stone) Option {
	return func(c *catalogOptions) {
		c.stones = stones
	}
}

// WithCategories seeds the catalog with category records.
func WithCategories(categories []Category) Option {
	return func(c *catalogOptions) {
		c.categories = categories
	}
}

// WithProducts seeds the catalog with product records.
func WithProducts(products []Product) Option {
	return func(c *catalogOptions) {
		c.products = products
	}
}
