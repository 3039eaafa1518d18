// Package api implements the storefront API client: catalog reads (metals,
// stones, product, categories), cart line reads, and the cart mutation
// calls the variant engine submits through.
package api

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gemfold/atelier/internal/transport"
	"github.com/gemfold/atelier/pkg/cart"
	"github.com/gemfold/atelier/pkg/catalogs"
	"github.com/gemfold/atelier/pkg/errors"
	"github.com/gemfold/atelier/pkg/logging"
)

// defaultStonePageSize is the page size requested from the paged stones
// endpoint. A response shorter than the requested size is the last page.
const defaultStonePageSize = 50

// Client talks to the storefront API.
type Client struct {
	baseURL   string
	transport *transport.Client
	log       *zerolog.Logger
	pageSize  int
}

// Compile-time check that Client can submit cart mutations.
var _ cart.Submitter = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for request logs.
func WithLogger(log *zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithTransport swaps the underlying transport client.
func WithTransport(tc *transport.Client) Option {
	return func(c *Client) {
		c.transport = tc
	}
}

// WithStonePageSize overrides the page size used when walking the stones
// endpoint.
func WithStonePageSize(size int) Option {
	return func(c *Client) {
		if size > 0 {
			c.pageSize = size
		}
	}
}

// New creates a storefront API client for the given base URL. An empty
// token sends unauthenticated requests.
func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		transport: transport.New(&transport.BearerAuth{}, token),
		log:       logging.Default(),
		pageSize:  defaultStonePageSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Metals fetches the full metal catalog in catalog order.
func (c *Client) Metals(ctx context.Context) ([]catalogs.Metal, error) {
	var metals []catalogs.Metal
	if err := c.get(ctx, "/metals", &metals); err != nil {
		return nil, err
	}
	c.log.Debug().Int("count", len(metals)).Msg("fetched metal catalog")
	return metals, nil
}

// Stones fetches the full stone catalog. The endpoint is paged; pages are
// walked in order and concatenated, preserving catalog order, until a page
// comes back shorter than the requested size.
func (c *Client) Stones(ctx context.Context) ([]catalogs.Stone, error) {
	var all []catalogs.Stone
	for page := 1; ; page++ {
		endpoint := fmt.Sprintf("/stones?page=%d&perPage=%d", page, c.pageSize)
		var stones []catalogs.Stone
		if err := c.get(ctx, endpoint, &stones); err != nil {
			return nil, err
		}
		all = append(all, stones...)
		if len(stones) < c.pageSize {
			break
		}
	}
	c.log.Debug().Int("count", len(all)).Msg("fetched stone catalog")
	return all, nil
}

// Product fetches one product by id.
func (c *Client) Product(ctx context.Context, id catalogs.ProductID) (*catalogs.Product, error) {
	if id == "" {
		return nil, errors.NewValidationError("id", id, "product id is required")
	}
	var product catalogs.Product
	if err := c.get(ctx, "/products/"+url.PathEscape(string(id)), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Categories fetches the category list used for ring classification.
func (c *Client) Categories(ctx context.Context) (*catalogs.Categories, error) {
	var list []catalogs.Category
	if err := c.get(ctx, "/categories", &list); err != nil {
		return nil, err
	}
	return catalogs.NewCategories(list), nil
}

// CartItems fetches the current cart lines.
func (c *Client) CartItems(ctx context.Context) ([]cart.LineItem, error) {
	var items []cart.LineItem
	if err := c.get(ctx, "/cart/items", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddLine submits a new cart line. It implements cart.Submitter.
func (c *Client) AddLine(ctx context.Context, payload cart.MutationPayload) error {
	endpoint := "/cart/items"
	c.logMutation("add", endpoint, payload)
	resp, err := c.transport.Post(ctx, c.baseURL+endpoint, payload)
	if err != nil {
		return errors.WrapResource("add", "cart line", string(payload.ProductID), err)
	}
	return transport.DecodeResponse(resp, endpoint, nil)
}

// UpdateLine replaces an existing cart line. It implements cart.Submitter.
func (c *Client) UpdateLine(ctx context.Context, itemID string, payload cart.MutationPayload) error {
	if itemID == "" {
		return errors.NewValidationError("itemID", itemID, "cart line id is required")
	}
	endpoint := "/cart/items/" + url.PathEscape(itemID)
	c.logMutation("update", endpoint, payload)
	resp, err := c.transport.Put(ctx, c.baseURL+endpoint, payload)
	if err != nil {
		return errors.WrapResource("update", "cart line", itemID, err)
	}
	return transport.DecodeResponse(resp, endpoint, nil)
}

// get performs a GET against an endpoint path and decodes the JSON body.
func (c *Client) get(ctx context.Context, endpoint string, target any) error {
	resp, err := c.transport.Get(ctx, c.baseURL+endpoint)
	if err != nil {
		return errors.WrapResource("fetch", "endpoint", endpoint, err)
	}
	return transport.DecodeResponse(resp, endpoint, target)
}

func (c *Client) logMutation(op, endpoint string, payload cart.MutationPayload) {
	c.log.Debug().
		Str("operation", op).
		Str("endpoint", endpoint).
		Str("product_id", string(payload.ProductID)).
		Int("quantity", payload.Quantity).
		Msg("submitting cart mutation")
}
