package currency

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ExchangeRate converts amounts of one currency into another.
type ExchangeRate struct {
	From Currency
	To   Currency
	Rate decimal.Decimal
}

// NewExchangeRate builds a directed rate where one unit of from is worth rate
// units of to.
func NewExchangeRate(from, to Currency, rate decimal.Decimal) (*ExchangeRate, error) {
	if from.Code == to.Code {
		return nil, errors.Wrapf(ErrConversion, "exchange rate requires two distinct currencies, got %s", from.Code)
	}
	if !rate.IsPositive() {
		return nil, errors.Wrapf(ErrConversion, "exchange rate %s/%s must be positive, got %s", from.Code, to.Code, rate)
	}

	return &ExchangeRate{
		From: from,
		To:   to,
		Rate: rate,
	}, nil
}

// Convert converts an amount of the From currency into the To currency,
// rounded to the precision of the To currency.
func (r *ExchangeRate) Convert(amount *Money) (*Money, error) {
	if amount.currency.Code != r.From.Code {
		return nil, errors.Wrapf(ErrConversion, "cannot convert %s with a %s/%s rate", amount.currency.Code, r.From.Code, r.To.Code)
	}
	return NewMoney(amount.amount.Mul(r.Rate), r.To), nil
}

// Inverse returns the rate in the opposite direction.
func (r *ExchangeRate) Inverse() (*ExchangeRate, error) {
	return NewExchangeRate(r.To, r.From, decimal.NewFromInt(1).Div(r.Rate))
}

func (r *ExchangeRate) String() string {
	return fmt.Sprintf("1 %s = %s %s", r.From.Code, r.Rate, r.To.Code)
}
