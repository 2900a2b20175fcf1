package main

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"golang.org/x/text/language"

	"github.com/code-payments/currencylayer/pkg/currency"
)

const (
	currencylayerProvider = "currencylayer"
	fixerProvider         = "fixer"

	defaultCurrencies = "GBP,USD,CAD"
	defaultAmount     = "100"
	defaultLocale     = "en"
)

type clientFactory func(ctx context.Context, provider string) (currency.Client, error)

// Client runs the rate commands and writes their output to Writer
type Client struct {
	Writer    io.Writer
	NewClient clientFactory
	Registry  currency.Registry
}

func newApp(w io.Writer, factory clientFactory) *cli.App {
	client := &Client{
		Writer:    w,
		NewClient: factory,
		Registry:  currency.NewISORegistry(),
	}

	sharedFlags := []cli.Flag{
		cli.StringFlag{
			Name:   "provider, p",
			Usage:  "rates provider, currencylayer or fixer",
			Value:  currencylayerProvider,
			EnvVar: "CURRENCY_PROVIDER",
		},
		cli.StringFlag{
			Name:   "currencies, c",
			Usage:  "comma separated currency codes",
			Value:  defaultCurrencies,
			EnvVar: "CURRENCYLAYER_CURRENCIES",
		},
		cli.StringFlag{
			Name:  "convert",
			Usage: "amount of the base currency to convert into each currency",
			Value: defaultAmount,
		},
		cli.StringFlag{
			Name:  "locale",
			Usage: "locale used to format converted amounts",
			Value: defaultLocale,
		},
	}

	app := cli.NewApp()
	app.Name = appName
	app.Usage = "Fetch exchange rates from currencylayer.com"
	app.Commands = []cli.Command{
		{
			Name:   "live",
			Usage:  "Get the latest exchange rates",
			Flags:  sharedFlags,
			Action: client.Live,
		},
		{
			Name:  "historical",
			Usage: "Get the exchange rates for a past day",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "date, d",
					Usage: "day to get rates for, as YYYY-MM-DD",
				},
			}, sharedFlags...),
			Action: client.Historical,
		},
	}
	return app
}

// Live prints the latest rates
func (cl *Client) Live(c *cli.Context) error {
	ctx, end := withNewRelic(context.Background(), "live")
	defer end()

	codes, err := cl.parseCurrencies(c)
	if err != nil {
		return err
	}

	rates, err := cl.client(ctx, c)
	if err != nil {
		return err
	}

	result, err := rates.GetLiveRates(ctx, codes)
	if err != nil {
		return err
	}
	return cl.print(c, codes, result)
}

// Historical prints the rates for the --date day
func (cl *Client) Historical(c *cli.Context) error {
	ctx, end := withNewRelic(context.Background(), "historical")
	defer end()

	if len(c.String("date")) == 0 {
		return errors.New("--date is required")
	}
	date, err := currency.ParseDate(c.String("date"))
	if err != nil {
		return err
	}

	codes, err := cl.parseCurrencies(c)
	if err != nil {
		return err
	}

	rates, err := cl.client(ctx, c)
	if err != nil {
		return err
	}

	result, err := rates.GetHistoricalRates(ctx, codes, date)
	if err != nil {
		return err
	}
	return cl.print(c, codes, result)
}

func (cl *Client) client(ctx context.Context, c *cli.Context) (currency.Client, error) {
	provider := c.String("provider")
	switch provider {
	case currencylayerProvider, fixerProvider:
	default:
		return nil, errors.Errorf("unknown provider %q", provider)
	}
	return cl.NewClient(ctx, provider)
}

func (cl *Client) parseCurrencies(c *cli.Context) ([]currency.Code, error) {
	codes := currency.ParseCodes(c.String("currencies"))
	if len(codes) == 0 {
		return nil, currency.ErrNoCurrencies
	}
	return codes, nil
}

func (cl *Client) print(c *cli.Context, requested []currency.Code, rates *currency.Rates) error {
	locale, err := language.Parse(c.String("locale"))
	if err != nil {
		return errors.Wrap(err, "invalid locale")
	}

	base, ok := cl.Registry.Lookup(rates.Base)
	if !ok {
		return &currency.InvalidCurrencyError{Symbol: rates.Base}
	}

	amount, err := currency.FromString(c.String("convert"), base)
	if err != nil {
		return errors.Wrap(err, "invalid amount")
	}

	fmt.Fprintf(cl.Writer, "Rates as of %s\n", rates.Timestamp.Format("2006-01-02 15:04:05 MST"))
	for _, code := range requested {
		rate, ok := rates.Quotes[code]
		if !ok {
			continue
		}

		converted, err := rate.Convert(amount)
		if err != nil {
			return err
		}

		fmt.Fprintf(cl.Writer, "%s\t%s -> %s\n", rate, amount.Format(locale), converted.Format(locale))
	}
	return nil
}
