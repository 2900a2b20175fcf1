package currencylayer

import (
	"time"

	"github.com/code-payments/currencylayer/pkg/config"
	"github.com/code-payments/currencylayer/pkg/config/env"
	"github.com/code-payments/currencylayer/pkg/config/memory"
	"github.com/code-payments/currencylayer/pkg/config/wrapper"
	"github.com/code-payments/currencylayer/pkg/currency/apilayer"
)

const (
	envConfigPrefix = "CURRENCYLAYER_"

	ApiKeyConfigEnvName = envConfigPrefix + "API_KEY"
	defaultApiKey       = ""

	BaseUrlConfigEnvName = envConfigPrefix + "BASE_URL"
	defaultBaseUrl       = DefaultBaseURL

	HttpTimeoutConfigEnvName = envConfigPrefix + "HTTP_TIMEOUT"
	defaultHttpTimeout       = apilayer.DefaultTimeout

	// Empty selects the passthrough policy against the API's own source
	BaseCurrencyConfigEnvName = envConfigPrefix + "BASE_CURRENCY"
	defaultBaseCurrency       = ""
)

type conf struct {
	apiKey       config.String
	baseUrl      config.String
	httpTimeout  config.Duration
	baseCurrency config.String
}

// ConfigProvider defines how config values are pulled
type ConfigProvider func() *conf

// WithEnvConfigs returns configuration pulled from environment variables
func WithEnvConfigs() ConfigProvider {
	return func() *conf {
		return &conf{
			apiKey:       env.NewStringConfig(ApiKeyConfigEnvName, defaultApiKey),
			baseUrl:      env.NewStringConfig(BaseUrlConfigEnvName, defaultBaseUrl),
			httpTimeout:  env.NewDurationConfig(HttpTimeoutConfigEnvName, defaultHttpTimeout),
			baseCurrency: env.NewStringConfig(BaseCurrencyConfigEnvName, defaultBaseCurrency),
		}
	}
}

type testOverrides struct {
	apiKey       string
	baseUrl      string
	httpTimeout  time.Duration
	baseCurrency string
}

func withManualTestOverrides(overrides *testOverrides) ConfigProvider {
	return func() *conf {
		return &conf{
			apiKey:       wrapper.NewStringConfig(memory.NewConfig(valueOrNil(overrides.apiKey)), defaultApiKey),
			baseUrl:      wrapper.NewStringConfig(memory.NewConfig(valueOrNil(overrides.baseUrl)), defaultBaseUrl),
			httpTimeout:  wrapper.NewDurationConfig(memory.NewConfig(valueOrNil(overrides.httpTimeout)), defaultHttpTimeout),
			baseCurrency: wrapper.NewStringConfig(memory.NewConfig(valueOrNil(overrides.baseCurrency)), defaultBaseCurrency),
		}
	}
}

// valueOrNil leaves zero valued overrides unset so the defaults apply
func valueOrNil[T comparable](value T) interface{} {
	var zero T
	if value == zero {
		return nil
	}
	return value
}
