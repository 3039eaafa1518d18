package variant

import (
	"strings"

	"github.com/gemfold/atelier/pkg/catalogs"
)

// IsRingCategory determines whether a category belongs to the ring family:
// either its own name is "ring"/"rings" or its direct parent's is. The
// check is exactly two levels deep; deeper ancestry is never walked.
func IsRingCategory(category *catalogs.ProductCategory, categories *catalogs.Categories) bool {
	if category == nil {
		return false
	}
	if isRingName(category.Name) {
		return true
	}
	if category.Parent == nil {
		return false
	}
	parent, ok := categories.Get(*category.Parent)
	if !ok {
		return false
	}
	return isRingName(parent.Name)
}

// IsRingProduct reports whether the product's category classifies as a
// ring. Ring products require a ring size before checkout.
func IsRingProduct(product *catalogs.Product, categories *catalogs.Categories) bool {
	if product == nil {
		return false
	}
	return IsRingCategory(product.Category, categories)
}

// RequiresCenterStone reports whether the product takes a center stone
// selection: ring-family products that are not plain bands.
func RequiresCenterStone(product *catalogs.Product, categories *catalogs.Categories) bool {
	if product == nil || product.IsBand {
		return false
	}
	return IsRingProduct(product, categories)
}

// isRingName matches the ring family by normalized category name.
func isRingName(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ring", "rings":
		return true
	}
	return false
}
