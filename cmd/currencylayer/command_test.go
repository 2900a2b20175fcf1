package main

import (
	"bytes"
	"context"
	"flag"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"

	"github.com/code-payments/currencylayer/pkg/currency"
	"github.com/code-payments/currencylayer/pkg/testutil"
)

type fakeRatesClient struct {
	rates        map[currency.Code]string
	requested    []currency.Code
	requestedDay *currency.Date
}

func (f *fakeRatesClient) GetLiveRates(_ context.Context, currencies []currency.Code) (*currency.Rates, error) {
	f.requested = currencies
	return f.build(currencies)
}

func (f *fakeRatesClient) GetHistoricalRates(_ context.Context, currencies []currency.Code, date currency.Date) (*currency.Rates, error) {
	f.requested = currencies
	f.requestedDay = &date
	return f.build(currencies)
}

func (f *fakeRatesClient) build(currencies []currency.Code) (*currency.Rates, error) {
	registry := currency.NewISORegistry()
	usd := currency.MustLookup(registry, currency.USD)

	quotes := make(map[currency.Code]*currency.ExchangeRate)
	for _, code := range currencies {
		if code == currency.USD {
			continue
		}
		rate, err := currency.NewExchangeRate(usd, currency.MustLookup(registry, code), decimal.RequireFromString(f.rates[code]))
		if err != nil {
			return nil, err
		}
		quotes[code] = rate
	}
	return &currency.Rates{
		Base:      currency.USD,
		Timestamp: time.Unix(1424735999, 0).UTC(),
		Quotes:    quotes,
	}, nil
}

func newTestContext(t *testing.T, args ...string) *cli.Context {
	set := flag.NewFlagSet("test", 0)
	set.String("provider", currencylayerProvider, "")
	set.String("currencies", defaultCurrencies, "")
	set.String("convert", defaultAmount, "")
	set.String("locale", defaultLocale, "")
	set.String("date", "", "")
	require.NoError(t, set.Parse(args))
	return cli.NewContext(nil, set, nil)
}

func newTestClient(fake *fakeRatesClient) (*Client, *bytes.Buffer) {
	var out bytes.Buffer
	return &Client{
		Writer: &out,
		NewClient: func(_ context.Context, _ string) (currency.Client, error) {
			return fake, nil
		},
		Registry: currency.NewISORegistry(),
	}, &out
}

func TestLive(t *testing.T) {
	fake := &fakeRatesClient{rates: map[currency.Code]string{currency.GBP: "0.7174", currency.CAD: "1.2716"}}
	client, out := newTestClient(fake)

	require.NoError(t, client.Live(newTestContext(t)))

	assert.Equal(t, []currency.Code{currency.GBP, currency.USD, currency.CAD}, fake.requested)
	assert.Contains(t, out.String(), "1 USD = 0.7174 GBP\t$100.00 -> £71.74")
	assert.Contains(t, out.String(), "1 USD = 1.2716 CAD\t$100.00 -> $127.16")
	assert.NotContains(t, out.String(), "USD = 1 USD")
}

func TestHistorical(t *testing.T) {
	fake := &fakeRatesClient{rates: map[currency.Code]string{currency.GBP: "0.647"}}
	client, out := newTestClient(fake)

	require.NoError(t, client.Historical(newTestContext(t, "-date", "2015-02-23", "-currencies", "gbp")))

	require.NotNil(t, fake.requestedDay)
	assert.Equal(t, "2015-02-23", fake.requestedDay.String())
	assert.Contains(t, out.String(), "$100.00 -> £64.70")

	assert.Error(t, client.Historical(newTestContext(t)))
	assert.Error(t, client.Historical(newTestContext(t, "-date", "23/02/2015")))
}

func TestInvalidFlags(t *testing.T) {
	defer testutil.DisableLogging()()

	client, _ := newTestClient(&fakeRatesClient{})

	assert.Error(t, client.Live(newTestContext(t, "-provider", "openexchangerates")))
	assert.Equal(t, currency.ErrNoCurrencies, client.Live(newTestContext(t, "-currencies", ",")))
}
