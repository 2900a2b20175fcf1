package currencylayer

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/code-payments/currencylayer/pkg/currency"
)

type opts struct {
	httpClient *http.Client
	registry   currency.Registry
	baseURL    string
	base       currency.Code
	log        *logrus.Entry
}

// Option configures a currencylayer client
type Option func(o *opts)

// WithHTTPClient sets the HTTP client used for requests
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *opts) {
		o.httpClient = httpClient
	}
}

// WithRegistry sets the registry requested and quoted currencies are resolved
// against. Defaults to the ISO registry.
func WithRegistry(registry currency.Registry) Option {
	return func(o *opts) {
		o.registry = registry
	}
}

// WithBaseURL overrides the API root, eg. to target the https endpoints of a
// paid plan.
func WithBaseURL(baseURL string) Option {
	return func(o *opts) {
		o.baseURL = baseURL
	}
}

// WithBase rebases every quote onto the provided currency. Without it, quotes
// are relative to the API's own source currency.
func WithBase(base currency.Code) Option {
	return func(o *opts) {
		o.base = base
	}
}

// WithLogger configures the logger used for request failures.
func WithLogger(log *logrus.Entry) Option {
	return func(o *opts) {
		o.log = log
	}
}
