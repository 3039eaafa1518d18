package catalogs

// Category represents a product category. The hierarchy is at most two
// levels deep for classification purposes: a category and its direct parent.
type Category struct {
	ID     CategoryID  `json:"id" yaml:"id"`
	Name   string      `json:"name" yaml:"name"`
	Parent *CategoryID `json:"parent,omitempty" yaml:"parent,omitempty"` // Direct parent category, if any
}

// Categories is an ordered collection of categories with id lookup.
type Categories struct {
	list []Category
	byID map[CategoryID]Category
}

// NewCategories creates a Categories collection preserving input order.
func NewCategories(categories []Category) *Categories {
	c := &Categories{
		list: make([]Category, len(categories)),
		byID: make(map[CategoryID]Category, len(categories)),
	}
	copy(c.list, categories)
	for _, cat := range categories {
		c.byID[cat.ID] = cat
	}
	return c
}

// List returns the categories in source order.
func (c *Categories) List() []Category {
	if c == nil {
		return nil
	}
	out := make([]Category, len(c.list))
	copy(out, c.list)
	return out
}

// Get returns the category with the given id.
func (c *Categories) Get(id CategoryID) (Category, bool) {
	if c == nil {
		return Category{}, false
	}
	cat, ok := c.byID[id]
	return cat, ok
}

// Len returns the number of categories.
func (c *Categories) Len() int {
	if c == nil {
		return 0
	}
	return len(c.list)
}
