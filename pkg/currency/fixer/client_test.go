package fixer

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/h2non/gock.v1"

	"github.com/code-payments/currencylayer/pkg/currency"
	"github.com/code-payments/currencylayer/pkg/currency/apilayer"
	"github.com/code-payments/currencylayer/pkg/testutil"
)

const (
	testApiKey = "test-fixer-key"
	testHost   = "https://api.apilayer.com"
)

func TestGetLiveRates(t *testing.T) {
	defer testutil.CloseGock(t)

	gock.New(testHost).
		Get("/fixer/latest").
		MatchHeader(http.CanonicalHeaderKey(apiKeyHeaderName), "^"+testApiKey+"$").
		MatchParam("base", "^USD$").
		MatchParam("symbols", "^GBP,CAD$").
		Reply(200).
		BodyString(`{
			"success": true,
			"timestamp": 1519296206,
			"base": "USD",
			"date": "2018-02-22",
			"rates": {
				"GBP": 0.72007,
				"CAD": 1.264,
				"XAU": 0.000751
			}
		}`)

	rates, err := NewClient(testApiKey).GetLiveRates(context.Background(), []currency.Code{currency.GBP, currency.CAD})
	require.NoError(t, err)

	assert.Equal(t, currency.USD, rates.Base)
	assert.Equal(t, time.Unix(1519296206, 0).UTC(), rates.Timestamp)
	require.Len(t, rates.Quotes, 2)
	assert.True(t, decimal.RequireFromString("0.72007").Equal(rates.Quotes[currency.GBP].Rate))
	assert.True(t, decimal.RequireFromString("1.264").Equal(rates.Quotes[currency.CAD].Rate))
}

func TestGetHistoricalRates(t *testing.T) {
	defer testutil.CloseGock(t)

	gock.New(testHost).
		Get("/fixer/2013-12-24").
		MatchParam("base", "^GBP$").
		MatchParam("symbols", "^USD,GBP$").
		Reply(200).
		BodyString(`{"success":true,"historical":true,"date":"2013-12-24","timestamp":1387929599,"base":"GBP","rates":{"USD":1.636492,"GBP":1}}`)

	client := NewClient(testApiKey, WithBase(currency.GBP))

	rates, err := client.GetHistoricalRates(context.Background(), []currency.Code{currency.USD, currency.GBP}, currency.NewDate(2013, time.December, 24))
	require.NoError(t, err)

	assert.Equal(t, currency.GBP, rates.Base)
	require.Len(t, rates.Quotes, 1)
	assert.True(t, decimal.RequireFromString("1.636492").Equal(rates.Quotes[currency.USD].Rate))
}

func TestInvalidBase(t *testing.T) {
	defer testutil.CloseGock(t)

	gock.New(testHost).
		Get("/fixer/latest").
		Reply(200).
		BodyString(`{"success":false,"error":{"code":201,"type":"invalid_base_currency","info":"An invalid base currency has been entered."}}`)

	_, err := NewClient(testApiKey, WithBase(currency.KES)).GetLiveRates(context.Background(), []currency.Code{currency.GBP})
	testutil.AssertInvalidCurrency(t, err, currency.KES)

	// Unknown to the registry, so nothing is sent upstream
	_, err = NewClient(testApiKey, WithBase("ZZZ")).GetLiveRates(context.Background(), []currency.Code{currency.GBP})
	testutil.AssertInvalidCurrency(t, err, "ZZZ")
}

func TestServerError(t *testing.T) {
	defer testutil.CloseGock(t)

	gock.New(testHost).
		Get("/fixer/latest").
		Reply(200).
		BodyString(`{"success":false,"error":{"code":202,"type":"invalid_currency_codes","info":"You have provided one or more invalid Currency Codes."}}`)

	_, err := NewClient(testApiKey).GetLiveRates(context.Background(), []currency.Code{currency.GBP})
	testutil.AssertServerError(t, err, 202, "You have provided one or more invalid Currency Codes.")
}

func TestIncompleteResponse(t *testing.T) {
	defer testutil.CloseGock(t)

	gock.New(testHost).
		Get("/fixer/latest").
		Reply(200).
		BodyString(`{"success":true,"timestamp":1519296206,"base":"USD","rates":{"GBP":0.72007}}`)

	_, err := NewClient(testApiKey).GetLiveRates(context.Background(), []currency.Code{currency.GBP, currency.CAD})
	testutil.AssertInvalidCurrency(t, err, currency.CAD)

	gock.New(testHost).
		Get("/fixer/latest").
		Reply(200).
		BodyString(`{"success":true,"timestamp":1519296206,"base":"EUR","rates":{"GBP":0.87}}`)

	_, err = NewClient(testApiKey).GetLiveRates(context.Background(), []currency.Code{currency.GBP})
	assert.True(t, errors.Is(err, apilayer.ErrParse))
}

func TestNewClientFromConfig(t *testing.T) {
	_, err := NewClientFromConfig(context.Background(), withManualTestOverrides(&testOverrides{}))
	assert.Error(t, err)

	configured, err := NewClientFromConfig(context.Background(), withManualTestOverrides(&testOverrides{
		apiKey:       testApiKey,
		baseCurrency: "eur",
	}))
	require.NoError(t, err)
	assert.Equal(t, currency.EUR, configured.(*client).base)

	configured, err = NewClientFromConfig(context.Background(), withManualTestOverrides(&testOverrides{
		apiKey: testApiKey,
	}))
	require.NoError(t, err)
	assert.Equal(t, currency.USD, configured.(*client).base)
}
