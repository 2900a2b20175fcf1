package currency

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidCurrency matches any InvalidCurrencyError.
	ErrInvalidCurrency = errors.New("invalid currency")

	// ErrConversion is returned when an exchange rate cannot be built or
	// applied.
	ErrConversion = errors.New("currency conversion failed")

	ErrNoCurrencies = errors.New("no currencies requested")
)

// InvalidCurrencyError names a currency that is unknown to the registry or
// missing from an upstream response.
type InvalidCurrencyError struct {
	Symbol Code
}

func (e *InvalidCurrencyError) Error() string {
	return fmt.Sprintf("invalid currency symbol: %s", e.Symbol)
}

func (e *InvalidCurrencyError) Is(target error) bool {
	return target == ErrInvalidCurrency
}
