package variant

import (
	"github.com/gemfold/atelier/pkg/cart"
	"github.com/gemfold/atelier/pkg/catalogs"
	"github.com/gemfold/atelier/pkg/errors"
)

// Validate runs the local pre-submission checks. It returns every
// violation so the UI can surface them together; a non-empty result must
// block submission entirely.
func (s *Session) Validate() []error {
	var errs []error
	if s.product == nil {
		errs = append(errs, errors.NewValidationError("product", nil, "product is not loaded"))
		return errs
	}
	if s.IsRing() && s.ringSize == "" {
		errs = append(errs, errors.NewValidationError("ringSize", s.ringSize, "ring size is required for ring products"))
	}
	// Metal selection is required only when the product configures metals.
	if s.product.HasMetals() && s.selectedMetal == nil {
		errs = append(errs, errors.NewValidationError("metal", nil, "metal selection is required"))
	}
	return errs
}

// BuildPayload serializes the current selection into the cart API's
// mutation shape. Conditional fields follow the selection state:
//
//   - ringSize is included only for ring products with a size chosen;
//   - metalId and purityLevel are included only when a metal is selected,
//     with the karat parsed as the leading integer of the option's label;
//   - stoneTypeId is included only when a canonical stone id can be
//     determined: the selection's own id, else a fresh catalog match on
//     the selection's name, else the product's default stone id when no
//     selection was made. A name-only selection with no catalog match
//     contributes no id, and a stone the user explicitly cleared is not
//     resurrected from the product default.
//
// Validation failures abort the build; nothing is partially submitted.
func (s *Session) BuildPayload() (cart.MutationPayload, error) {
	if errs := s.Validate(); len(errs) > 0 {
		return cart.MutationPayload{}, errs[0]
	}

	payload := cart.MutationPayload{
		ProductID: s.product.ID,
		Quantity:  s.quantity,
	}

	if s.IsRing() && s.ringSize != "" {
		payload.RingSize = s.ringSize
	}

	if s.selectedMetal != nil {
		payload.MetalID = s.selectedMetal.MetalID
		payload.PurityLevel = &cart.PurityLevelPayload{
			Karat:           ParseKaratLabel(s.selectedMetal.KaratLabel),
			PriceMultiplier: s.selectedMetal.Multiplier(),
		}
	}

	if id := s.stoneTypeID(); id != nil {
		payload.StoneTypeID = id
	}

	return payload, nil
}

// stoneTypeID resolves the canonical stone id for submission.
func (s *Session) stoneTypeID() *catalogs.StoneID {
	if s.selectedStone != nil {
		if s.selectedStone.ID != nil && *s.selectedStone.ID != "" {
			id := *s.selectedStone.ID
			return &id
		}
		// Name-only selection: one more catalog pass, in case the stone
		// list finished loading after the selection was made.
		if resolved := ResolveStone(StoneByName(s.selectedStone.Name), s.stones); resolved != nil && resolved.ID != nil {
			id := *resolved.ID
			return &id
		}
		// Still unmatched: submit by name is not supported, omit the id.
		return nil
	}

	// No selection at all: fall back to the product default, unless the
	// user explicitly cleared the stone.
	if s.stoneUserSet {
		return nil
	}
	if s.product.StoneType != nil && s.product.StoneType.ID != nil && *s.product.StoneType.ID != "" {
		id := *s.product.StoneType.ID
		return &id
	}
	return nil
}
