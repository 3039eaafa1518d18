// Package variant implements the product variant configuration and price
// resolution engine shared by every surface that sells a configurable
// product: product cards, detail pages, quick-add modals, and the cart
// line editor.
//
// The engine is built from pure resolvers over read-only catalog data
// (metal options, availability, stone resolution, ring classification,
// price) plus a Session that reconciles selection state from either
// defaults or an existing cart line and serializes the result into the
// cart API's mutation payload. All resolvers return "no result" as nil or
// zero values, never panic, so callers can always render a fallback.
package variant
