package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestMoney_Construction(t *testing.T) {
	registry := NewISORegistry()
	usd := MustLookup(registry, USD)
	jpy := MustLookup(registry, JPY)
	bhd := MustLookup(registry, BHD)

	assert.True(t, decimal.RequireFromString("100").Equal(FromMajor(100, usd).Amount()))
	assert.True(t, decimal.RequireFromString("1.23").Equal(FromMinor(123, usd).Amount()))
	assert.True(t, decimal.RequireFromString("123").Equal(FromMinor(123, jpy).Amount()))
	assert.True(t, decimal.RequireFromString("0.123").Equal(FromMinor(123, bhd).Amount()))

	amount, err := FromString("1.005", usd)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("1.00").Equal(amount.Amount()))

	_, err = FromString("not a number", usd)
	assert.Error(t, err)

	assert.True(t, FromMajor(1, usd).Equal(FromMinor(100, usd)))
	assert.False(t, FromMajor(1, usd).Equal(FromMajor(1, jpy)))
}

func TestMoney_String(t *testing.T) {
	registry := NewISORegistry()

	assert.Equal(t, "$100.00", FromMajor(100, MustLookup(registry, USD)).String())
	assert.Equal(t, "£71.74", FromMinor(7174, MustLookup(registry, GBP)).String())
	assert.Equal(t, "¥1846", FromMajor(1846, MustLookup(registry, JPY)).String())

	assert.Equal(t, "KES1.50", FromMinor(150, MustLookup(registry, KES)).String())
}

func TestMoney_Format(t *testing.T) {
	registry := NewISORegistry()
	usd := MustLookup(registry, USD)

	amount, err := FromString("1234.5", usd)
	require.NoError(t, err)

	assert.Equal(t, "$1,234.50", amount.Format(language.English))
	assert.Equal(t, "$1.234,50", amount.Format(language.German))
}

func TestMoney_FormatKeepsPrecision(t *testing.T) {
	registry := NewISORegistry()
	usd := MustLookup(registry, USD)

	amount, err := FromString("90071992547409.93", usd)
	require.NoError(t, err)
	assert.Equal(t, "$90071992547409.93", amount.String())
	assert.Equal(t, "$90,071,992,547,409.93", amount.Format(language.English))

	assert.Equal(t, "$0.05", FromMinor(5, usd).Format(language.English))
	assert.Equal(t, "$-12.30", FromMinor(-1230, usd).Format(language.English))
	assert.Equal(t, "¥1,846", FromMajor(1846, MustLookup(registry, JPY)).Format(language.English))
}
