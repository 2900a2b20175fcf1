package fixer

import (
	"context"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/code-payments/currencylayer/pkg/currency"
	"github.com/code-payments/currencylayer/pkg/currency/apilayer"
	"github.com/code-payments/currencylayer/pkg/metrics"
)

const (
	metricsStructName = "currency.fixer.client"
)

const (
	DefaultBaseURL = "https://api.apilayer.com/fixer"

	latestPath = "/latest"

	baseParam    = "base"
	symbolsParam = "symbols"

	apiKeyHeaderName = "apikey"
)

const (
	invalidBaseErrorCode = 201
)

// API Documentation: https://apilayer.com/marketplace/fixer-api#documentation-tab
type client struct {
	log        *logrus.Entry
	apiKey     string
	baseURL    string
	base       currency.Code
	httpClient *http.Client
	registry   currency.Registry
}

func NewClient(apiKey string, options ...Option) currency.Client {
	o := &opts{
		baseURL: DefaultBaseURL,
		base:    currency.USD,
		log:     logrus.StandardLogger().WithField("type", "currency/fixer"),
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
		base:       o.base,
		httpClient: o.httpClient,
		registry:   o.registry,
	}
}

// NewClientFromConfig returns a client configured from the provided config
func NewClientFromConfig(ctx context.Context, configProvider ConfigProvider, options ...Option) (currency.Client, error) {
	conf := configProvider()

	apiKey := conf.apiKey.Get(ctx)
	if len(apiKey) == 0 {
		return nil, errors.Errorf("%s is not set", ApiKeyConfigEnvName)
	}

	base := currency.Code(strings.ToUpper(conf.baseCurrency.Get(ctx)))
	return NewClient(apiKey, append([]Option{WithBase(base)}, options...)...), nil
}

// GetLiveRates implements currency.Client.GetLiveRates
func (c *client) GetLiveRates(ctx context.Context, currencies []currency.Code) (*currency.Rates, error) {
	tracer := metrics.TraceMethodCall(ctx, metricsStructName, "GetLiveRates")
	tracer.AddAttribute("currencies", currency.JoinCodes(currencies))
	defer tracer.End()

	rates, err := c.getRates(ctx, latestPath, currencies)
	if err != nil {
		c.log.WithError(err).WithField("method", "GetLiveRates").Warn("failure getting latest rates")
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

	err := date.Validate()
	if err != nil {
		err = apilayer.ParseError(err, "invalid historical date")
	} else {
		var rates *currency.Rates
		rates, err = c.getRates(ctx, "/"+date.String(), currencies)
		if err == nil {
			return rates, nil
		}
	}

	c.log.WithError(err).WithFields(logrus.Fields{
		"method": "GetHistoricalRates",
		"date":   date.String(),
	}).Warn("failure getting historical rates")
	tracer.OnError(err)
	return nil, err
}

func (c *client) getRates(ctx context.Context, path string, currencies []currency.Code) (*currency.Rates, error) {
	if len(currencies) == 0 {
		return nil, currency.ErrNoCurrencies
	}

	base, ok := c.registry.Lookup(c.base)
	if !ok {
		return nil, &currency.InvalidCurrencyError{Symbol: c.base}
	}

	requested, err := currency.Resolve(c.registry, currencies...)
	if err != nil {
		return nil, err
	}

	symbols := make([]currency.Code, 0, len(requested))
	for _, target := range requested {
		symbols = append(symbols, target.Code)
	}

	query := url.Values{}
	query.Set(baseParam, string(base.Code))
	query.Set(symbolsParam, currency.JoinCodes(symbols))

	header := http.Header{}
	header.Set(apiKeyHeaderName, c.apiKey)

	body, err := apilayer.Get(ctx, c.httpClient, c.baseURL+path, query, header)
	if err != nil {
		return nil, err
	}

	var resp response
	err = apilayer.Decode(body, &resp)
	if err != nil {
		var serverErr *apilayer.ServerError
		if errors.As(err, &serverErr) && serverErr.Code == invalidBaseErrorCode {
			return nil, &currency.InvalidCurrencyError{Symbol: base.Code}
		}
		return nil, err
	}

	if skipped := resp.unsupportedSymbols(c.registry); len(skipped) > 0 {
		c.log.WithField("symbols", skipped).Debug("ignoring unsupported symbols")
	}

	return resp.toRates(base, requested)
}

type response struct {
	Success   bool                       `json:"success"`
	Base      currency.Code              `json:"base"`
	Date      string                     `json:"date"`
	Rates     map[string]decimal.Decimal `json:"rates"`
	Timestamp int64                      `json:"timestamp"`
}

func (r *response) toRates(base currency.Currency, requested []currency.Currency) (*currency.Rates, error) {
	if r.Timestamp <= 0 {
		return nil, apilayer.ParseErrorf("response has no timestamp")
	}
	if len(r.Base) > 0 && r.Base != base.Code {
		return nil, apilayer.ParseErrorf("rates are relative to %s, expected %s", r.Base, base.Code)
	}

	quotes := make(map[currency.Code]*currency.ExchangeRate, len(requested))
	for _, target := range requested {
		if target.Code == base.Code {
			continue
		}

		value, ok := r.Rates[string(target.Code)]
		if !ok {
			return nil, &currency.InvalidCurrencyError{Symbol: target.Code}
		}

		rate, err := currency.NewExchangeRate(base, target, value)
		if err != nil {
			return nil, err
		}
		quotes[target.Code] = rate
	}

	return &currency.Rates{
		Base:      base.Code,
		Timestamp: time.Unix(r.Timestamp, 0).UTC(),
		Quotes:    quotes,
	}, nil
}

// unsupportedSymbols returns quoted symbols that are not currency codes, eg.
// precious metals and crypto assets, in a stable order.
func (r *response) unsupportedSymbols(registry currency.Registry) []string {
	var res []string
	for symbol := range r.Rates {
		if _, ok := registry.Lookup(currency.Code(symbol)); !ok {
			res = append(res, symbol)
		}
	}
	sort.Strings(res)
	return res
}
