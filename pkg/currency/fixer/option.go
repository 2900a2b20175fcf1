package fixer

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

// Option configures a fixer client
type Option func(o *opts)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *opts) {
		o.httpClient = httpClient
	}
}

func WithRegistry(registry currency.Registry) Option {
	return func(o *opts) {
		o.registry = registry
	}
}

func WithBaseURL(baseURL string) Option {
	return func(o *opts) {
		o.baseURL = baseURL
	}
}

// WithBase sets the currency rates are quoted against. Fixer rebases upstream,
// so any supported currency may be used.
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
