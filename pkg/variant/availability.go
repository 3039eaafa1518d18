package variant

import (
	"github.com/gemfold/atelier/pkg/catalogs"
)

// MarkAvailability annotates each option with whether the product offers
// it. An option is available iff the product declares at least one metal
// and the option's metal is either in the product's allow-list or equal to
// the metal already recorded on the cart item being edited.
//
// When the product declares zero metals every option is unavailable; the
// caller must render a "no metal options" state and must not require a
// metal selection for that product.
func MarkAvailability(options []MetalOption, product *catalogs.Product, existingMetalID catalogs.MetalID) []MetalOption {
	hasProductMetals := product.HasMetals()

	allowed := make(map[catalogs.MetalID]bool)
	if hasProductMetals {
		for _, id := range product.MetalIDs() {
			allowed[id] = true
		}
	}

	annotated := make([]MetalOption, len(options))
	for i, option := range options {
		option.IsAvailable = hasProductMetals &&
			(allowed[option.MetalID] || (existingMetalID != "" && option.MetalID == existingMetalID))
		annotated[i] = option
	}
	return annotated
}

// FirstAvailable returns the first available option in catalog order.
func FirstAvailable(options []MetalOption) (MetalOption, bool) {
	for _, option := range options {
		if option.IsAvailable {
			return option, true
		}
	}
	return MetalOption{}, false
}
