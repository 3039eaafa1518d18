package variant

import (
	"github.com/rs/zerolog"

	"github.com/gemfold/atelier/pkg/cart"
	"github.com/gemfold/atelier/pkg/catalogs"
	"github.com/gemfold/atelier/pkg/errors"
	"github.com/gemfold/atelier/pkg/logging"
)

// Mode selects how a session seeds its initial state.
type Mode int

const (
	// ModeCreate seeds defaults for a fresh selection and auto-picks the
	// first available metal.
	ModeCreate Mode = iota
	// ModeEdit hydrates state from an existing cart line item and
	// suppresses auto-selection until the item has been applied.
	ModeEdit
)

// String returns the string representation of a Mode.
func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// Phase is the reconciliation state of a session. Dependencies (product,
// metal catalog, stone catalog, cart item) resolve independently and may
// arrive in any order; the phase makes that ordering independence a
// structural guarantee instead of an emergent one.
type Phase int

const (
	// PhaseEmpty means no dependency has arrived yet.
	PhaseEmpty Phase = iota
	// PhaseAwaitingProduct means catalogs may be present but the product
	// has not loaded.
	PhaseAwaitingProduct
	// PhaseAwaitingCatalogs means the product is present but a catalog
	// (or, in edit mode, the cart item) is still loading.
	PhaseAwaitingCatalogs
	// PhaseHydrated means seeding has converged; later arrivals are no-ops.
	PhaseHydrated
	// PhaseUserEdited means the user has changed at least one field;
	// hydration never overwrites user-set fields.
	PhaseUserEdited
)

// String returns the string representation of a Phase.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingProduct:
		return "awaiting-product"
	case PhaseAwaitingCatalogs:
		return "awaiting-catalogs"
	case PhaseHydrated:
		return "hydrated"
	case PhaseUserEdited:
		return "user-edited"
	default:
		return "empty"
	}
}

// Session owns the working selection state for one product view: the
// derived metal options, the current metal/stone/ring-size/quantity
// selection, and the reconciliation bookkeeping. A session is created
// fresh per product-detail view or modal open and discarded on close; it
// is owned by a single view instance and is not safe for concurrent use.
type Session struct {
	mode Mode
	log  *zerolog.Logger

	product    *catalogs.Product
	categories *catalogs.Categories
	metals     []catalogs.Metal
	stones     []catalogs.Stone
	item       *cart.LineItem

	metalsLoaded bool
	stonesLoaded bool

	options []MetalOption

	selectedMetal *MetalOption
	selectedStone *SelectedStone
	ringSize      string
	quantity      int

	// User edits are never clobbered by later hydration passes.
	metalUserSet bool
	stoneUserSet bool
	sizeUserSet  bool
	qtyUserSet   bool
	userEdited   bool

	itemHydrated bool // edit-mode line item applied
	stoneSeeded  bool // stone fallback has converged against a loaded catalog
}

// SessionOption configures a session.
type SessionOption func(*Session)

// WithLogger sets the logger used for reconciliation debug logs.
func WithLogger(log *zerolog.Logger) SessionOption {
	return func(s *Session) {
		s.log = log
	}
}

// NewSession creates a session in the given mode. Quantity starts at 1 and
// ring size empty; everything else hydrates as dependencies arrive.
func NewSession(mode Mode, opts ...SessionOption) *Session {
	s := &Session{
		mode:     mode,
		quantity: 1,
		log:      logging.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetProduct records the loaded product and re-runs reconciliation.
func (s *Session) SetProduct(product *catalogs.Product) {
	s.product = product
	s.reconcile()
}

// SetCategories records the loaded category list used for ring
// classification.
func (s *Session) SetCategories(categories *catalogs.Categories) {
	s.categories = categories
	s.reconcile()
}

// SetMetalCatalog records the loaded metal catalog and re-runs
// reconciliation.
func (s *Session) SetMetalCatalog(metals []catalogs.Metal) {
	s.metals = metals
	s.metalsLoaded = true
	s.reconcile()
}

// SetStoneCatalog records the loaded stone catalog and re-runs
// reconciliation.
func (s *Session) SetStoneCatalog(stones []catalogs.Stone) {
	s.stones = stones
	s.stonesLoaded = true
	s.reconcile()
}

// SetCartItem provides the existing cart line for an edit-mode session.
func (s *Session) SetCartItem(item *cart.LineItem) {
	s.item = item
	s.reconcile()
}

// reconcile is the single state machine step. It is idempotent: running it
// again with the same inputs changes nothing, so every dependency arrival
// can simply call it.
func (s *Session) reconcile() {
	s.rebuildOptions()
	s.hydrateFromItem()
	s.seedStone()
	s.autoSelectMetal()

	if s.log.GetLevel() <= zerolog.DebugLevel {
		s.log.Debug().
			Str("mode", s.mode.String()).
			Str("phase", s.Phase().String()).
			Int("options", len(s.options)).
			Bool("metal_selected", s.selectedMetal != nil).
			Msg("session reconciled")
	}
}

// rebuildOptions re-derives the availability-annotated option list. The
// derivation is a pure function of its inputs, so rebuilding on every
// arrival is safe.
func (s *Session) rebuildOptions() {
	if !s.metalsLoaded {
		return
	}
	s.options = MarkAvailability(BuildMetalOptions(s.metals), s.product, s.existingMetalID())
}

// existingMetalID returns the metal recorded on the cart item being
// edited, which stays selectable even if the product no longer offers it.
func (s *Session) existingMetalID() catalogs.MetalID {
	if s.item == nil || s.item.Metal == nil {
		return ""
	}
	return s.item.Metal.ID
}

// hydrateFromItem seeds quantity, ring size, and metal from the persisted
// cart line, exactly once, without touching user-set fields.
func (s *Session) hydrateFromItem() {
	if s.mode != ModeEdit || s.item == nil || s.itemHydrated {
		return
	}

	if !s.qtyUserSet && s.item.Quantity >= 1 {
		s.quantity = s.item.Quantity
	}
	if !s.sizeUserSet && s.item.RingSize != "" {
		s.ringSize = s.item.RingSize
	}

	if !s.metalUserSet && s.selectedMetal == nil && s.item.Metal != nil {
		karat := float64(defaultKarat)
		multiplier := 1.0
		if s.item.PurityLevel != nil {
			if s.item.PurityLevel.Karat > 0 {
				karat = s.item.PurityLevel.Karat
			}
			if s.item.PurityLevel.PriceMultiplier > 0 {
				multiplier = s.item.PurityLevel.PriceMultiplier
			}
		}
		option := MetalOption{
			OptionID:        OptionID(karat, s.item.Metal.Name),
			MetalID:         s.item.Metal.ID,
			Karat:           karat,
			KaratLabel:      KaratLabel(karat),
			MetalName:       s.item.Metal.Name,
			PriceMultiplier: multiplier,
			IsAvailable:     true,
		}
		s.selectedMetal = &option
	}

	s.itemHydrated = true
}

// stoneSeedQuery computes the stone fallback chain for the current mode:
// cart item's stone, then the product default, then the cart item's bare
// stone id.
func (s *Session) stoneSeedQuery() StoneQuery {
	if s.mode == ModeEdit && s.item != nil {
		if s.item.StoneType != nil {
			return StoneByRef(s.item.StoneType)
		}
		if s.product != nil && s.product.StoneType != nil {
			return StoneByRef(s.product.StoneType)
		}
		if s.item.StoneTypeID != nil && *s.item.StoneTypeID != "" {
			return StoneByID(*s.item.StoneTypeID, "", 0)
		}
		return NoStone()
	}
	if s.product != nil && s.product.StoneType != nil {
		return StoneByRef(s.product.StoneType)
	}
	return NoStone()
}

// seedStone applies the stone fallback chain. Until every input the
// chain consults has arrived the result is provisional and recomputed on
// each pass; it converges exactly once when the stone catalog and the
// product are both present, and never overwrites a stone the user has
// since changed.
func (s *Session) seedStone() {
	if s.stoneUserSet || s.stoneSeeded {
		return
	}
	// In edit mode the item drives the chain; wait for it.
	if s.mode == ModeEdit && s.item == nil {
		return
	}
	if s.product == nil && s.mode == ModeCreate {
		return
	}

	query := s.stoneSeedQuery()
	s.selectedStone = ResolveStone(query, s.stones)
	// The product default is a step of the chain, so freezing before the
	// product arrives would pin a result that a later arrival changes.
	if s.stonesLoaded && s.product != nil {
		s.stoneSeeded = true
	}
}

// autoSelectMetal picks the first available option in catalog order when
// the product configures metals and nothing is selected yet. The pass is
// idempotent: once a metal is selected (by the user, by hydration, or by a
// previous pass) it is a no-op. In edit mode it never runs before the
// persisted line item has been applied, so it cannot race the hydration.
func (s *Session) autoSelectMetal() {
	if s.selectedMetal != nil || s.metalUserSet {
		return
	}
	if s.product == nil || !s.metalsLoaded || !s.product.HasMetals() {
		return
	}
	if s.mode == ModeEdit && !s.itemHydrated {
		return
	}
	if option, ok := FirstAvailable(s.options); ok {
		s.selectedMetal = &option
	}
}

// SelectMetal records a user's metal choice by option id. Unavailable
// options cannot be selected.
func (s *Session) SelectMetal(optionID string) error {
	for _, option := range s.options {
		if option.OptionID != optionID {
			continue
		}
		if !option.IsAvailable {
			return errors.WrapResource("select", "metal option", optionID, errors.ErrUnavailable)
		}
		selected := option
		s.selectedMetal = &selected
		s.metalUserSet = true
		s.userEdited = true
		return nil
	}
	return errors.NewNotFoundError("metal option", optionID)
}

// SelectStone records a user's stone choice from a raw selection. The
// empty query clears the stone.
func (s *Session) SelectStone(query StoneQuery) {
	s.selectedStone = ResolveStone(query, s.stones)
	s.stoneUserSet = true
	s.userEdited = true
}

// SetRingSize records a user's ring size choice.
func (s *Session) SetRingSize(size string) {
	s.ringSize = size
	s.sizeUserSet = true
	s.userEdited = true
}

// SetQuantity records the line quantity, clamped to a minimum of 1.
func (s *Session) SetQuantity(quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	s.quantity = quantity
	s.qtyUserSet = true
	s.userEdited = true
}

// Mode returns the session's seeding mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Phase returns the session's reconciliation phase.
func (s *Session) Phase() Phase {
	if s.userEdited && s.product != nil {
		return PhaseUserEdited
	}
	loadedAny := s.product != nil || s.metalsLoaded || s.stonesLoaded || s.item != nil
	if !loadedAny {
		return PhaseEmpty
	}
	if s.product == nil {
		return PhaseAwaitingProduct
	}
	if !s.metalsLoaded || !s.stonesLoaded {
		return PhaseAwaitingCatalogs
	}
	if s.mode == ModeEdit && !s.itemHydrated {
		return PhaseAwaitingCatalogs
	}
	return PhaseHydrated
}

// Product returns the loaded product, if any.
func (s *Session) Product() *catalogs.Product {
	return s.product
}

// Options returns the availability-annotated option list in catalog order.
func (s *Session) Options() []MetalOption {
	out := make([]MetalOption, len(s.options))
	copy(out, s.options)
	return out
}

// HasMetalOptions reports whether any option is available for this
// product. When false, metal selection must not be required.
func (s *Session) HasMetalOptions() bool {
	_, ok := FirstAvailable(s.options)
	return ok
}

// SelectedMetal returns the current metal selection, or nil.
func (s *Session) SelectedMetal() *MetalOption {
	if s.selectedMetal == nil {
		return nil
	}
	selected := *s.selectedMetal
	return &selected
}

// SelectedStone returns the current stone selection, or nil.
func (s *Session) SelectedStone() *SelectedStone {
	if s.selectedStone == nil {
		return nil
	}
	selected := *s.selectedStone
	return &selected
}

// RingSize returns the current ring size selection.
func (s *Session) RingSize() string {
	return s.ringSize
}

// Quantity returns the current line quantity.
func (s *Session) Quantity() int {
	return s.quantity
}

// IsRing reports whether the product classifies into the ring family.
func (s *Session) IsRing() bool {
	return IsRingProduct(s.product, s.categories)
}

// NeedsCenterStone reports whether a center stone selection applies to
// this product.
func (s *Session) NeedsCenterStone() bool {
	return RequiresCenterStone(s.product, s.categories)
}

// UnitPrice returns the resolved price for one unit of the current
// configuration. It uses exactly the multiplier and stone price that
// BuildPayload submits, so display and submission always agree.
func (s *Session) UnitPrice() float64 {
	if s.product == nil {
		return 0
	}
	multiplier := 1.0
	if s.selectedMetal != nil {
		multiplier = s.selectedMetal.Multiplier()
	}
	stonePrice := 0.0
	if s.selectedStone != nil {
		stonePrice = s.selectedStone.Price
	}
	return ResolvePrice(s.product.Price, multiplier, stonePrice)
}

// LinePrice returns the unit price times the quantity.
func (s *Session) LinePrice() float64 {
	return s.UnitPrice() * float64(s.quantity)
}
