package atelier

import (
	"github.com/gemfold/atelier/internal/api"
	"github.com/gemfold/atelier/pkg/cart"
	"github.com/gemfold/atelier/pkg/catalogs"
	"github.com/gemfold/atelier/pkg/variant"
)

// config holds the facade configuration built from options.
type config struct {
	catalog     catalogs.Reader
	catalogPath string

	baseURL    string
	token      string
	apiOptions []api.Option

	submitter      cart.Submitter
	sessionOptions []variant.SessionOption
}

// defaultConfig returns the default facade configuration.
func defaultConfig() *config {
	return &config{}
}

// Option is a function that configures an Atelier instance.
type Option func(*config) error

// WithCatalog configures the initial catalog to use.
func WithCatalog(catalog catalogs.Reader) Option {
	return func(c *config) error {
		c.catalog = catalog
		return nil
	}
}

// WithCatalogPath configures a YAML catalog directory to load at startup.
func WithCatalogPath(path string) Option {
	return func(c *config) error {
		c.catalogPath = path
		return nil
	}
}

// WithRemote configures the storefront API used for catalog refreshes,
// product lookups, and cart submission. An empty token sends
// unauthenticated requests.
func WithRemote(baseURL, token string, opts ...api.Option) Option {
	return func(c *config) error {
		c.baseURL = baseURL
		c.token = token
		c.apiOptions = opts
		return nil
	}
}

// WithSubmitter overrides the cart submitter, taking precedence over the
// remote API client. Mainly for tests and alternative transports.
func WithSubmitter(submitter cart.Submitter) Option {
	return func(c *config) error {
		c.submitter = submitter
		return nil
	}
}

// WithSessionOptions configures options applied to every session the
// facade creates.
func WithSessionOptions(opts ...variant.SessionOption) Option {
	return func(c *config) error {
		c.sessionOptions = opts
		return nil
	}
}
