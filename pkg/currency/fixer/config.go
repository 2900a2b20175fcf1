package fixer

import (
	"github.com/code-payments/currencylayer/pkg/config"
	"github.com/code-payments/currencylayer/pkg/config/env"
	"github.com/code-payments/currencylayer/pkg/config/memory"
	"github.com/code-payments/currencylayer/pkg/config/wrapper"
)

const (
	envConfigPrefix = "FIXER_"

	ApiKeyConfigEnvName = envConfigPrefix + "API_KEY"
	defaultApiKey       = ""

	BaseCurrencyConfigEnvName = envConfigPrefix + "BASE_CURRENCY"
	defaultBaseCurrency       = "USD"
)

type conf struct {
	apiKey       config.String
	baseCurrency config.String
}

// ConfigProvider defines how config values are pulled
type ConfigProvider func() *conf

// WithEnvConfigs returns configuration pulled from environment variables
func WithEnvConfigs() ConfigProvider {
	return func() *conf {
		return &conf{
			apiKey:       env.NewStringConfig(ApiKeyConfigEnvName, defaultApiKey),
			baseCurrency: env.NewStringConfig(BaseCurrencyConfigEnvName, defaultBaseCurrency),
		}
	}
}

type testOverrides struct {
	apiKey       string
	baseCurrency string
}

func withManualTestOverrides(overrides *testOverrides) ConfigProvider {
	return func() *conf {
		c := &conf{
			apiKey:       wrapper.NewStringConfig(memory.NewConfig(nil), defaultApiKey),
			baseCurrency: wrapper.NewStringConfig(memory.NewConfig(nil), defaultBaseCurrency),
		}
		if len(overrides.apiKey) > 0 {
			c.apiKey = wrapper.NewStringConfig(memory.NewConfig(overrides.apiKey), defaultApiKey)
		}
		if len(overrides.baseCurrency) > 0 {
			c.baseCurrency = wrapper.NewStringConfig(memory.NewConfig(overrides.baseCurrency), defaultBaseCurrency)
		}
		return c
	}
}
