package currency

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestISORegistry(t *testing.T) {
	registry := NewISORegistry()

	for _, code := range AllCodes {
		assert.True(t, code.IsValid(), code)

		c, ok := registry.Lookup(code)
		require.True(t, ok, code)
		assert.Equal(t, code, c.Code)
		assert.Equal(t, GetDecimals(code), c.Decimals)
		assert.NotEmpty(t, c.Symbol)
	}

	gbp, ok := registry.Lookup(GBP)
	require.True(t, ok)
	assert.Equal(t, "£", gbp.Symbol)
	assert.Equal(t, 2, gbp.Decimals)

	_, ok = registry.Lookup("ABC")
	assert.False(t, ok)
}

func TestRestrictedRegistry(t *testing.T) {
	registry := NewRegistry(
		Currency{Code: USD, Decimals: 2, Symbol: "$"},
		Currency{Code: GBP, Decimals: 2, Symbol: "£"},
	)

	_, ok := registry.Lookup(USD)
	assert.True(t, ok)
	_, ok = registry.Lookup(CAD)
	assert.False(t, ok)

	resolved, err := Resolve(registry, GBP, USD)
	require.NoError(t, err)
	require.Len(t, resolved, 2)
	assert.Equal(t, GBP, resolved[0].Code)
	assert.Equal(t, USD, resolved[1].Code)

	_, err = Resolve(registry, GBP, CAD, USD)
	assert.True(t, errors.Is(err, ErrInvalidCurrency))

	var invalidErr *InvalidCurrencyError
	require.True(t, errors.As(err, &invalidErr))
	assert.Equal(t, CAD, invalidErr.Symbol)
	assert.Equal(t, "invalid currency symbol: CAD", err.Error())

	assert.Panics(t, func() {
		MustLookup(registry, CAD)
	})
}

func TestCodeValidation(t *testing.T) {
	for _, valid := range []Code{USD, "ABC", "ZZZ"} {
		assert.True(t, valid.IsValid(), valid)
	}
	for _, invalid := range []Code{"", "usd", "US", "USDT", "U5D"} {
		assert.False(t, invalid.IsValid(), invalid)
	}
}

func TestJoinAndParseCodes(t *testing.T) {
	codes := ParseCodes(" gbp,USD,, cad ")
	assert.Equal(t, []Code{GBP, USD, CAD}, codes)
	assert.Equal(t, "GBP,USD,CAD", JoinCodes(codes))
	assert.Empty(t, ParseCodes(""))
	assert.Equal(t, "", JoinCodes(nil))
}
