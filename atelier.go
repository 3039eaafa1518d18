// Package atelier is the variant configuration and price resolution engine
// for a jewelry storefront. It derives purchasable metal/purity options
// from the metal catalog, resolves center stone selections, classifies
// ring products, computes variant prices, and builds the cart mutation
// payloads the storefront API expects.
//
// The facade ties the pieces together: a catalog (local YAML files, seeded
// records, or fetched from the storefront API), per-product selection
// sessions, and guarded cart submission.
//
// Example usage:
//
//	a, err := atelier.New(atelier.WithCatalogPath("./catalog"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	session, err := a.NewSession(ctx, "p-solitaire")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	session.SetRingSize("7")
//
//	if err := a.Submit(ctx, session); err != nil {
//	    log.Fatal(err)
//	}
package atelier

import (
	"context"
	"sync"

	"github.com/gemfold/atelier/internal/api"
	"github.com/gemfold/atelier/pkg/cart"
	"github.com/gemfold/atelier/pkg/catalogs"
	"github.com/gemfold/atelier/pkg/errors"
	"github.com/gemfold/atelier/pkg/variant"
)

// Atelier manages a catalog and creates variant selection sessions over it.
type Atelier interface {
	// Catalog returns the current catalog.
	Catalog() catalogs.Reader

	// Refresh refetches the metal, stone, and category catalogs from the
	// storefront API. It requires a remote configuration.
	Refresh(ctx context.Context) error

	// NewSession creates a create-mode session for one product, hydrated
	// from the current catalog.
	NewSession(ctx context.Context, productID catalogs.ProductID) (*variant.Session, error)

	// EditSession creates an edit-mode session hydrated from an existing
	// cart line.
	EditSession(ctx context.Context, item *cart.LineItem) (*variant.Session, error)

	// Submit builds the session's payload and issues an "add line"
	// mutation through the submission guard.
	Submit(ctx context.Context, session *variant.Session) error

	// Update builds the session's payload and issues an "update line"
	// mutation for an existing cart item.
	Update(ctx context.Context, itemID string, session *variant.Session) error

	// Busy reports whether a cart mutation is currently in flight.
	Busy() bool
}

// atelier is the internal implementation of the Atelier interface.
type atelier struct {
	mu      sync.RWMutex
	catalog catalogs.Reader
	config  *config

	client *api.Client
	guard  *cart.Guard
}

// New creates a new Atelier instance with the given options.
func New(opts ...Option) (Atelier, error) {
	a := &atelier{
		config: defaultConfig(),
	}

	if err := a.options(opts...); err != nil {
		return nil, errors.NewConfigError("atelier", "applying options", err)
	}

	// Use the provided catalog, or load from the configured source.
	switch {
	case a.config.catalog != nil:
		a.catalog = a.config.catalog
	case a.config.catalogPath != "":
		catalog, err := catalogs.New(catalogs.WithPath(a.config.catalogPath))
		if err != nil {
			return nil, err
		}
		a.catalog = catalog
	default:
		catalog, err := catalogs.New()
		if err != nil {
			return nil, err
		}
		a.catalog = catalog
	}

	if a.config.baseURL != "" {
		a.client = api.New(a.config.baseURL, a.config.token, a.config.apiOptions...)
	}

	submitter := a.config.submitter
	if submitter == nil && a.client != nil {
		submitter = a.client
	}
	if submitter != nil {
		a.guard = cart.NewGuard(submitter)
	}

	return a, nil
}

// options applies the given options to the configuration.
func (a *atelier) options(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(a.config); err != nil {
			return err
		}
	}
	return nil
}

// Catalog returns the current catalog.
func (a *atelier) Catalog() catalogs.Reader {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.catalog
}

// Refresh refetches the catalogs from the storefront API and swaps them in
// atomically. Products are fetched per id by NewSession, not here.
func (a *atelier) Refresh(ctx context.Context) error {
	if a.client == nil {
		return errors.NewConfigError("atelier", "no remote configured for refresh", nil)
	}

	metals, err := a.client.Metals(ctx)
	if err != nil {
		return err
	}
	stones, err := a.client.Stones(ctx)
	if err != nil {
		return err
	}
	categories, err := a.client.Categories(ctx)
	if err != nil {
		return err
	}

	catalog, err := catalogs.New(
		catalogs.WithMetals(metals),
		catalogs.WithStones(stones),
		catalogs.WithCategories(categories.List()),
		catalogs.WithProducts(a.Catalog().Products()),
	)
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.catalog = catalog
	a.mu.Unlock()
	return nil
}

// NewSession creates a create-mode session for one product.
func (a *atelier) NewSession(ctx context.Context, productID catalogs.ProductID) (*variant.Session, error) {
	product, err := a.product(ctx, productID)
	if err != nil {
		return nil, err
	}

	session := variant.NewSession(variant.ModeCreate, a.config.sessionOptions...)
	a.hydrate(session, product)
	return session, nil
}

// EditSession creates an edit-mode session from an existing cart line.
func (a *atelier) EditSession(ctx context.Context, item *cart.LineItem) (*variant.Session, error) {
	if item == nil {
		return nil, errors.NewValidationError("item", nil, "cart line is required")
	}
	product, err := a.product(ctx, item.ProductID)
	if err != nil {
		return nil, err
	}

	session := variant.NewSession(variant.ModeEdit, a.config.sessionOptions...)
	session.SetCartItem(item)
	a.hydrate(session, product)
	return session, nil
}

// product resolves a product from the catalog, falling back to the remote
// API when the catalog does not carry it.
func (a *atelier) product(ctx context.Context, id catalogs.ProductID) (*catalogs.Product, error) {
	catalog := a.Catalog()
	if product, err := catalog.Product(id); err == nil {
		return &product, nil
	} else if !errors.IsNotFound(err) {
		return nil, err
	}

	if a.client == nil {
		return nil, errors.NewNotFoundError("product", id.String())
	}
	return a.client.Product(ctx, id)
}

// hydrate feeds the catalog into a session.
func (a *atelier) hydrate(session *variant.Session, product *catalogs.Product) {
	catalog := a.Catalog()
	session.SetProduct(product)
	session.SetCategories(catalog.Categories())
	session.SetMetalCatalog(catalog.Metals())
	session.SetStoneCatalog(catalog.Stones())
}

// Submit builds and submits an "add line" mutation for the session.
func (a *atelier) Submit(ctx context.Context, session *variant.Session) error {
	payload, err := a.payload(session)
	if err != nil {
		return err
	}
	return a.guard.Submit(ctx, payload)
}

// Update builds and submits an "update line" mutation for the session.
func (a *atelier) Update(ctx context.Context, itemID string, session *variant.Session) error {
	payload, err := a.payload(session)
	if err != nil {
		return err
	}
	return a.guard.Update(ctx, itemID, payload)
}

// payload validates the submission preconditions and builds the payload.
func (a *atelier) payload(session *variant.Session) (cart.MutationPayload, error) {
	if a.guard == nil {
		return cart.MutationPayload{}, errors.NewConfigError("atelier", "no submitter configured", nil)
	}
	if session == nil {
		return cart.MutationPayload{}, errors.NewValidationError("session", nil, "session is required")
	}
	return session.BuildPayload()
}

// Busy reports whether a cart mutation is currently in flight.
func (a *atelier) Busy() bool {
	return a.guard != nil && a.guard.Busy()
}
