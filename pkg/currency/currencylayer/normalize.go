package currencylayer

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/code-payments/currencylayer/pkg/currency"
)

// normalizer turns source-relative quotes into exchange rates for the
// requested currencies. A client uses exactly one policy for every call.
type normalizer interface {
	validate() error

	// queryCodes returns the currencies to ask the API for
	queryCodes(requested []currency.Code) []currency.Code

	normalize(resp *response, requested []currency.Code) (*currency.Rates, error)
}

// passthrough keeps quotes relative to the API's source currency.
type passthrough struct {
	registry currency.Registry
}

func (n *passthrough) validate() error {
	return nil
}

func (n *passthrough) queryCodes(requested []currency.Code) []currency.Code {
	return requested
}

func (n *passthrough) normalize(resp *response, requested []currency.Code) (*currency.Rates, error) {
	timestamp, err := resp.timestamp()
	if err != nil {
		return nil, err
	}

	pairs, err := resp.pairs()
	if err != nil {
		return nil, err
	}

	wanted := make(map[currency.Code]struct{}, len(requested))
	for _, code := range requested {
		wanted[code] = struct{}{}
	}

	quotes := make(map[currency.Code]*currency.ExchangeRate)
	for _, p := range pairs {
		if _, ok := wanted[p.to]; !ok {
			continue
		}

		resolved, err := currency.Resolve(n.registry, p.from, p.to)
		if err != nil {
			return nil, err
		}
		from, to := resolved[0], resolved[1]

		if from.Code == to.Code {
			continue
		}

		rate, err := currency.NewExchangeRate(from, to, p.rate)
		if err != nil {
			return nil, err
		}
		quotes[to.Code] = rate
	}

	source := resp.source()
	for _, code := range requested {
		if code == source {
			continue
		}
		if _, ok := quotes[code]; !ok {
			return nil, &currency.InvalidCurrencyError{Symbol: code}
		}
	}

	return &currency.Rates{
		Base:      source,
		Timestamp: timestamp,
		Quotes:    quotes,
	}, nil
}

// rebasing converts every quote so that it is relative to a caller chosen
// base currency.
type rebasing struct {
	registry currency.Registry
	base     currency.Currency
}

func (n *rebasing) validate() error {
	return nil
}

func (n *rebasing) queryCodes(requested []currency.Code) []currency.Code {
	for _, code := range requested {
		if code == n.base.Code {
			return requested
		}
	}

	res := make([]currency.Code, 0, len(requested)+1)
	res = append(res, requested...)
	return append(res, n.base.Code)
}

func (n *rebasing) normalize(resp *response, requested []currency.Code) (*currency.Rates, error) {
	timestamp, err := resp.timestamp()
	if err != nil {
		return nil, err
	}

	factor, err := n.factor(resp)
	if err != nil {
		return nil, err
	}

	source := resp.source()
	quotes := make(map[currency.Code]*currency.ExchangeRate, len(requested))
	for _, code := range requested {
		if code == n.base.Code {
			continue
		}

		to, ok := n.registry.Lookup(code)
		if !ok {
			return nil, &currency.InvalidCurrencyError{Symbol: code}
		}

		quote, ok := resp.quote(code)
		if !ok && code == source {
			quote, ok = decimal.NewFromInt(1), true
		}
		if !ok {
			return nil, &currency.InvalidCurrencyError{Symbol: code}
		}

		rate, err := currency.NewExchangeRate(n.base, to, factor.Mul(quote))
		if err != nil {
			return nil, err
		}
		quotes[code] = rate
	}

	return &currency.Rates{
		Base:      n.base.Code,
		Timestamp: timestamp,
		Quotes:    quotes,
	}, nil
}

// factor is the multiplier from the base currency into the source currency
func (n *rebasing) factor(resp *response) (decimal.Decimal, error) {
	if n.base.Code == resp.source() {
		return decimal.NewFromInt(1), nil
	}

	quote, ok := resp.quote(n.base.Code)
	if !ok {
		return decimal.Zero, &currency.InvalidCurrencyError{Symbol: n.base.Code}
	}
	if !quote.IsPositive() {
		return decimal.Zero, errors.Wrapf(currency.ErrConversion, "cannot rebase onto %s with quote %s", n.base.Code, quote)
	}
	return decimal.NewFromInt(1).Div(quote), nil
}

// invalidBase is used when the configured base is unknown to the registry.
type invalidBase struct {
	base currency.Code
}

func (n *invalidBase) validate() error {
	return &currency.InvalidCurrencyError{Symbol: n.base}
}

func (n *invalidBase) queryCodes(requested []currency.Code) []currency.Code {
	return requested
}

func (n *invalidBase) normalize(_ *response, _ []currency.Code) (*currency.Rates, error) {
	return nil, n.validate()
}
