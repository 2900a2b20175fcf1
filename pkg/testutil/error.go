package testutil

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/currencylayer/pkg/currency"
	"github.com/code-payments/currencylayer/pkg/currency/apilayer"
)

// AssertInvalidCurrency verifies that the provided error is an invalid
// currency error naming the provided code.
func AssertInvalidCurrency(t *testing.T, err error, code currency.Code) {
	require.Error(t, err)
	require.True(t, errors.Is(err, currency.ErrInvalidCurrency), err.Error())

	var invalidErr *currency.InvalidCurrencyError
	require.True(t, errors.As(err, &invalidErr))
	assert.Equal(t, code, invalidErr.Symbol)
}

// AssertServerError verifies that the provided error is an upstream reported
// error with the provided code and message.
func AssertServerError(t *testing.T, err error, code int, info string) {
	require.Error(t, err)

	var serverErr *apilayer.ServerError
	require.True(t, errors.As(err, &serverErr), err.Error())
	assert.Equal(t, code, serverErr.Code)
	assert.Equal(t, info, serverErr.Info)
}
