package currency

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Money is an amount of a single currency.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// NewMoney returns an amount of the currency, rounded to its precision.
func NewMoney(amount decimal.Decimal, currency Currency) *Money {
	return &Money{
		amount:   amount.RoundBank(int32(currency.Decimals)),
		currency: currency,
	}
}

// FromMajor builds an amount from whole units, eg. dollars.
func FromMajor(units int64, currency Currency) *Money {
	return NewMoney(decimal.NewFromInt(units), currency)
}

// FromMinor builds an amount from minor units, eg. cents.
func FromMinor(units int64, currency Currency) *Money {
	return NewMoney(decimal.New(units, -int32(currency.Decimals)), currency)
}

// FromString parses a decimal string amount.
func FromString(value string, currency Currency) (*Money, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return nil, err
	}
	return NewMoney(amount, currency), nil
}

func (m *Money) Amount() decimal.Decimal {
	return m.amount
}

func (m *Money) Currency() Currency {
	return m.currency
}

// Equal compares both the amount and the currency.
func (m *Money) Equal(other *Money) bool {
	return m.currency.Code == other.currency.Code && m.amount.Equal(other.amount)
}

// String renders the amount with the currency symbol and a fixed number of
// decimals, eg. £71.74.
func (m *Money) String() string {
	return m.currency.Symbol + m.amount.StringFixedBank(int32(m.currency.Decimals))
}

// Format renders the amount using the number formatting rules of the locale.
// Digits come from the decimal amount, so large values keep full precision.
func (m *Money) Format(locale language.Tag) string {
	printer := message.NewPrinter(locale)

	fixed := m.amount.Abs().StringFixedBank(int32(m.currency.Decimals))
	whole, fraction, _ := strings.Cut(fixed, ".")

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return m.String()
	}

	formatted := printer.Sprint(number.Decimal(units))
	if len(fraction) > 0 {
		minor, err := strconv.ParseInt(fraction, 10, 64)
		if err != nil {
			return m.String()
		}
		formatted += decimalSeparator(printer) + printer.Sprint(number.Decimal(
			minor,
			number.MinIntegerDigits(len(fraction)),
			number.NoSeparator(),
		))
	}
	if m.amount.IsNegative() {
		formatted = "-" + formatted
	}

	if isRtlScript(locale) {
		return formatted + m.currency.Symbol
	}
	return m.currency.Symbol + formatted
}

// decimalSeparator returns the locale's separator between whole and
// fractional digits, eg. "." for en and "," for fr.
func decimalSeparator(printer *message.Printer) string {
	sample := []rune(printer.Sprint(number.Decimal(1.5, number.Scale(1))))
	if len(sample) < 3 {
		return "."
	}
	return string(sample[1 : len(sample)-1])
}

func isRtlScript(t language.Tag) bool {
	script, _ := t.Script()
	switch script.String() {
	case
		"Adlm",
		"Arab",
		"Aran",
		"Hebr",
		"Mand",
		"Mend",
		"Nkoo",
		"Rohg",
		"Samr",
		"Syrc",
		"Syre",
		"Syrj",
		"Syrn",
		"Thaa":
		return true
	}
	return false
}
