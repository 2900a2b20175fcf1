package currencylayer

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/code-payments/currencylayer/pkg/currency"
	"github.com/code-payments/currencylayer/pkg/currency/apilayer"
	"github.com/code-payments/currencylayer/pkg/metrics"
)

const (
	metricsStructName = "currency.currencylayer.client"

	serverErrorEventName = "CurrencyLayerServerError"
)

const (
	DefaultBaseURL = "http://apilayer.net/api"

	livePath       = "/live"
	historicalPath = "/historical"

	currenciesParam = "currencies"
	formatParam     = "format"
	accessKeyParam  = "access_key"
	dateParam       = "date"

	prettyFormat = "1"
)

// API Documentation: https://currencylayer.com/documentation
type client struct {
	log        *logrus.Entry
	apiKey     string
	baseURL    string
	httpClient *http.Client
	registry   currency.Registry
	normalizer normalizer
}

// NewClient returns a currencylayer client. Rates are relative to the API's
// source currency unless WithBase is provided. An invalid WithBase currency
// surfaces as an invalid currency error on every call.
func NewClient(apiKey string, options ...Option) currency.Client {
	o := &opts{
		baseURL: DefaultBaseURL,
		log:     logrus.StandardLogger().WithField("type", "currency/currencylayer"),
	}
	for _, option := range options {
		option(o)
	}
	if o.httpClient == nil {
		o.httpClient = apilayer.NewHTTPClient(apilayer.DefaultTimeout)
	}
	if o.registry == nil {
		o.registry = currency.NewISORegistry()
	}

	return &client{
		log:        o.log,
		apiKey:     apiKey,
		baseURL:    strings.TrimSuffix(o.baseURL, "/"),
		httpClient: o.httpClient,
		registry:   o.registry,
		normalizer: newNormalizer(o.registry, o.base),
	}
}

// NewClientFromConfig returns a client configured from the provided config.
// Explicit options take precedence over config values.
func NewClientFromConfig(ctx context.Context, configProvider ConfigProvider, options ...Option) (currency.Client, error) {
	conf := configProvider()

	apiKey := conf.apiKey.Get(ctx)
	if len(apiKey) == 0 {
		return nil, errors.Errorf("%s is not set", ApiKeyConfigEnvName)
	}

	configured := []Option{
		WithBaseURL(conf.baseUrl.Get(ctx)),
		WithHTTPClient(apilayer.NewHTTPClient(conf.httpTimeout.Get(ctx))),
	}
	if base := conf.baseCurrency.Get(ctx); len(base) > 0 {
		configured = append(configured, WithBase(currency.Code(strings.ToUpper(base))))
	}

	return NewClient(apiKey, append(configured, options...)...), nil
}

func newNormalizer(registry currency.Registry, base currency.Code) normalizer {
	if len(base) == 0 {
		return &passthrough{registry: registry}
	}

	resolved, ok := registry.Lookup(base)
	if !ok {
		return &invalidBase{base: base}
	}
	return &rebasing{registry: registry, base: resolved}
}

// GetLiveRates implements currency.Client.GetLiveRates
func (c *client) GetLiveRates(ctx context.Context, currencies []currency.Code) (*currency.Rates, error) {
	tracer := metrics.TraceMethodCall(ctx, metricsStructName, "GetLiveRates")
	tracer.AddAttribute("currencies", currency.JoinCodes(currencies))
	defer tracer.End()

	log := c.log.WithField("method", "GetLiveRates")

	rates, err := c.getRates(ctx, log, livePath, currencies, nil)
	if err != nil {
		log.WithError(err).Warn("failure getting live rates")
		tracer.OnError(err)
		return nil, err
	}
	return rates, nil
}

// GetHistoricalRates implements currency.Client.GetHistoricalRates
func (c *client) GetHistoricalRates(ctx context.Context, currencies []currency.Code, date currency.Date) (*currency.Rates, error) {
	tracer := metrics.TraceMethodCall(ctx, metricsStructName, "GetHistoricalRates")
	tracer.AddAttributes(map[string]interface{}{
		"currencies": currency.JoinCodes(currencies),
		"date":       date.String(),
	})
	defer tracer.End()

	log := c.log.WithFields(logrus.Fields{
		"method": "GetHistoricalRates",
		"date":   date.String(),
	})

	if err := date.Validate(); err != nil {
		err = apilayer.ParseError(err, "invalid historical date")
		log.WithError(err).Warn("failure getting historical rates")
		tracer.OnError(err)
		return nil, err
	}

	rates, err := c.getRates(ctx, log, historicalPath, currencies, &date)
	if err != nil {
		log.WithError(err).Warn("failure getting historical rates")
		tracer.OnError(err)
		return nil, err
	}
	return rates, nil
}

func (c *client) getRates(ctx context.Context, log *logrus.Entry, path string, currencies []currency.Code, date *currency.Date) (*currency.Rates, error) {
	if err := c.normalizer.validate(); err != nil {
		return nil, err
	}

	requested, err := c.validateRequested(currencies)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set(currenciesParam, currency.JoinCodes(c.normalizer.queryCodes(requested)))
	query.Set(formatParam, prettyFormat)
	query.Set(accessKeyParam, c.apiKey)
	if date != nil {
		query.Set(dateParam, date.String())
	}

	log.WithField("currencies", query.Get(currenciesParam)).Debug("requesting rates")

	body, err := apilayer.Get(ctx, c.httpClient, c.baseURL+path, query, nil)
	if err != nil {
		return nil, err
	}

	var resp response
	err = apilayer.Decode(body, &resp)
	if err != nil {
		var serverErr *apilayer.ServerError
		if errors.As(err, &serverErr) {
			metrics.RecordEvent(ctx, serverErrorEventName, map[string]interface{}{
				"code": serverErr.Code,
				"type": serverErr.Type,
				"info": serverErr.Info,
			})
		}
		return nil, err
	}

	return c.normalizer.normalize(&resp, requested)
}

// validateRequested dedupes the requested codes and checks each one against
// the registry before anything is sent upstream.
func (c *client) validateRequested(currencies []currency.Code) ([]currency.Code, error) {
	if len(currencies) == 0 {
		return nil, currency.ErrNoCurrencies
	}

	seen := make(map[currency.Code]struct{}, len(currencies))
	res := make([]currency.Code, 0, len(currencies))
	for _, code := range currencies {
		if _, ok := seen[code]; ok {
			continue
		}
		if _, ok := c.registry.Lookup(code); !ok {
			return nil, &currency.InvalidCurrencyError{Symbol: code}
		}
		seen[code] = struct{}{}
		res = append(res, code)
	}
	return res, nil
}
