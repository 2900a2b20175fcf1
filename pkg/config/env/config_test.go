package env

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/code-payments/currencylayer/pkg/config"
)

func TestConfigDoesntExist(t *testing.T) {
	const env = "ENV_CONFIG_TEST_VAR"
	t.Setenv(env, "value")

	v, err := NewConfig(env).Get(context.Background())
	assert.Equal(t, []byte("value"), v)
	assert.Nil(t, err)

	t.Setenv(env, "")

	v, err = NewConfig(env).Get(context.Background())
	assert.Nil(t, v)
	assert.Equal(t, config.ErrNoValue, err)
}

func TestKeyIsUpperCased(t *testing.T) {
	t.Setenv("ENV_CONFIG_TEST_KEY", "abc")

	assert.Equal(t, "abc", NewStringConfig("env_config_test_key", "default").Get(context.Background()))
}

func TestTypedConfigs(t *testing.T) {
	t.Setenv("ENV_CONFIG_TEST_TIMEOUT", "3s")
	t.Setenv("ENV_CONFIG_TEST_CURRENCIES", "GBP, USD,,CAD")

	assert.Equal(t, 3*time.Second, NewDurationConfig("ENV_CONFIG_TEST_TIMEOUT", time.Second).Get(context.Background()))
	assert.Equal(t, time.Second, NewDurationConfig("ENV_CONFIG_TEST_MISSING", time.Second).Get(context.Background()))
	assert.Equal(t, []string{"GBP", "USD", "CAD"}, NewStringsConfig("ENV_CONFIG_TEST_CURRENCIES", nil).Get(context.Background()))
	assert.Equal(t, "default", NewStringConfig("ENV_CONFIG_TEST_MISSING", "default").Get(context.Background()))
}
