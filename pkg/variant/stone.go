package variant

import (
	"strings"

	"github.com/gemfold/atelier/pkg/catalogs"
)

// StoneQueryKind tags the forms a raw stone selection can take. UI
// surfaces hand the engine loose input (a name string, a partial object,
// or nothing); the boundary constructors below convert it into this tagged
// union so resolution can match exhaustively instead of branching on
// dynamic types.
type StoneQueryKind int

const (
	// StoneQueryNone is the absence of a selection.
	StoneQueryNone StoneQueryKind = iota
	// StoneQueryName is a selection named by string, not yet matched
	// against the loaded stone catalog.
	StoneQueryName
	// StoneQueryResolved is a selection that already carries a canonical
	// stone id.
	StoneQueryResolved
)

// String returns the string representation of a StoneQueryKind.
func (k StoneQueryKind) String() string {
	switch k {
	case StoneQueryName:
		return "name"
	case StoneQueryResolved:
		return "resolved"
	default:
		return "none"
	}
}

// StoneQuery is a normalized raw stone selection.
type StoneQuery struct {
	kind  StoneQueryKind
	name  string
	id    catalogs.StoneID
	price float64
}

// Kind returns the query's tag.
func (q StoneQuery) Kind() StoneQueryKind {
	return q.kind
}

// NoStone returns the empty selection.
func NoStone() StoneQuery {
	return StoneQuery{kind: StoneQueryNone}
}

// StoneByName builds a query from a loose name string. An empty or
// whitespace-only name is the empty selection.
func StoneByName(name string) StoneQuery {
	name = strings.TrimSpace(name)
	if name == "" {
		return NoStone()
	}
	return StoneQuery{kind: StoneQueryName, name: name}
}

// StoneByID builds a query that already carries a canonical id.
func StoneByID(id catalogs.StoneID, name string, price float64) StoneQuery {
	if id == "" {
		return StoneByName(name)
	}
	return StoneQuery{kind: StoneQueryResolved, id: id, name: name, price: price}
}

// StoneByRef converts a product or cart stone reference at the boundary.
func StoneByRef(ref *catalogs.StoneRef) StoneQuery {
	if ref == nil {
		return NoStone()
	}
	if ref.ID != nil && *ref.ID != "" {
		return StoneByID(*ref.ID, ref.Name, ref.Price)
	}
	return StoneByName(ref.Name)
}

// SelectedStone is a normalized selection result. A nil ID signals "named
// but unmatched in the loaded catalog": still usable for display, but it
// contributes no stone id to the cart payload.
type SelectedStone struct {
	Name  string            `json:"name"`
	ID    *catalogs.StoneID `json:"id"`
	Price float64           `json:"price,omitempty"`
}

// ResolveStone maps a raw selection to a canonical stone record from the
// loaded catalog. Resolution rules, in order:
//
//  1. A query carrying an id is accepted as-is; if the catalog holds a
//     matching stone its price (and name, when the query had none) is
//     backfilled, otherwise the given price is kept.
//  2. A named query searches the catalog for a stone whose name contains
//     the input, case-insensitively. First match wins, in catalog order.
//     The substring match is intentionally loose: "1.5" against a catalog
//     holding "1.5 CT" and "11.5 CT" takes whichever appears first.
//  3. A named query with no catalog match resolves to a name-only
//     selection with a nil id and zero price.
//  4. The empty query resolves to nil: no selection, no stone price.
func ResolveStone(query StoneQuery, stones []catalogs.Stone) *SelectedStone {
	switch query.kind {
	case StoneQueryResolved:
		selected := &SelectedStone{Name: query.name, Price: query.price}
		id := query.id
		selected.ID = &id
		for _, stone := range stones {
			if stone.ID == query.id {
				selected.Price = stone.Price
				if selected.Name == "" {
					selected.Name = stone.Name
				}
				break
			}
		}
		return selected

	case StoneQueryName:
		needle := strings.ToLower(query.name)
		for _, stone := range stones {
			if strings.Contains(strings.ToLower(stone.Name), needle) {
				id := stone.ID
				return &SelectedStone{Name: stone.Name, ID: &id, Price: stone.Price}
			}
		}
		// Best-effort named selection, unresolved in this catalog.
		return &SelectedStone{Name: query.name, ID: nil, Price: 0}

	default:
		return nil
	}
}
