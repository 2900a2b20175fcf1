package currency

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// Rates is the result of a single exchange rate lookup. Every quote converts
// one unit of Base into the quote's target currency.
type Rates struct {
	Base Code

	// Timestamp is the time reported by the upstream provider, in UTC.
	Timestamp time.Time

	Quotes map[Code]*ExchangeRate
}

// Get returns the exchange rate from the base currency into the provided
// currency.
func (r *Rates) Get(to Code) (*ExchangeRate, error) {
	rate, ok := r.Quotes[to]
	if !ok {
		return nil, &InvalidCurrencyError{Symbol: to}
	}
	return rate, nil
}

// Convert converts an amount of the base currency into the provided currency.
func (r *Rates) Convert(amount *Money, to Code) (*Money, error) {
	rate, err := r.Get(to)
	if err != nil {
		return nil, err
	}
	return rate.Convert(amount)
}

// Codes returns the target currencies present in the result.
func (r *Rates) Codes() []Code {
	res := make([]Code, 0, len(r.Quotes))
	for code := range r.Quotes {
		res = append(res, code)
	}
	return res
}

// Date is a calendar day used to select historical rates.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf returns the UTC calendar day of t.
func DateOf(t time.Time) Date {
	t = t.UTC()
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(value string) (Date, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return Date{}, errors.Wrapf(err, "invalid date %q", value)
	}
	return DateOf(t), nil
}

// Validate checks that the date exists in the calendar.
func (d Date) Validate() error {
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	if t.Year() != d.Year || t.Month() != d.Month || t.Day() != d.Day {
		return errors.Errorf("invalid date %d-%d-%d", d.Year, d.Month, d.Day)
	}
	return nil
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

type Client interface {
	// GetLiveRates gets the latest exchange rates for the requested currencies.
	GetLiveRates(ctx context.Context, currencies []Code) (*Rates, error)

	// GetHistoricalRates gets the end of day exchange rates for the requested
	// currencies on the provided date.
	GetHistoricalRates(ctx context.Context, currencies []Code, date Date) (*Rates, error)
}
