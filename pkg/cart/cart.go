// Package cart provides the cart line item model, the mutation payload
// shape the cart API expects, and a single-flight submission guard.
// Persistence and business rules beyond this shape live in the external
// storefront API.
package cart

import (
	"context"

	"github.com/gemfold/atelier/pkg/catalogs"
)

// LineItem is a persisted entry in a user's cart representing one product
// configuration and quantity. The variant engine hydrates its selection
// state from this shape when editing an existing line.
type LineItem struct {
	ID          string             `json:"id"`
	ProductID   catalogs.ProductID `json:"productId"`
	Quantity    int                `json:"quantity"`
	RingSize    string             `json:"ringSize,omitempty"`
	Metal       *catalogs.Metal    `json:"metal,omitempty"`       // Persisted metal record (id and name)
	PurityLevel *PersistedPurity   `json:"purityLevel,omitempty"` // Persisted karat grade
	StoneType   *catalogs.StoneRef `json:"stoneType,omitempty"`   // Persisted stone selection, if any
	StoneTypeID *catalogs.StoneID  `json:"stoneTypeId,omitempty"` // Canonical stone id, when only the id was stored
}

// PersistedPurity is the karat grade recorded on a cart line.
type PersistedPurity struct {
	Karat           float64 `json:"karat"`
	PriceMultiplier float64 `json:"priceMultiplier"`
}

// MutationPayload is the shape submitted to the cart API for an "add line"
// or "update line" call. Optional fields are omitted rather than sent empty.
type MutationPayload struct {
	ProductID   catalogs.ProductID  `json:"productId"`
	Quantity    int                 `json:"quantity"`
	RingSize    string              `json:"ringSize,omitempty"`
	MetalID     catalogs.MetalID    `json:"metalId,omitempty"`
	PurityLevel *PurityLevelPayload `json:"purityLevel,omitempty"`
	StoneTypeID *catalogs.StoneID   `json:"stoneTypeId,omitempty"`
}

// PurityLevelPayload is the purity fragment of a cart mutation.
type PurityLevelPayload struct {
	Karat           int     `json:"karat"`
	PriceMultiplier float64 `json:"priceMultiplier"`
}

// Submitter submits cart mutations to the external cart API. The engine
// only interprets success or failure; retry policy belongs to the client.
type Submitter interface {
	AddLine(ctx context.Context, payload MutationPayload) error
	UpdateLine(ctx context.Context, itemID string, payload MutationPayload) error
}
