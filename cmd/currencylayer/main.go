package main

import (
	"context"
	"os"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/sirupsen/logrus"

	"github.com/code-payments/currencylayer/pkg/config/env"
	"github.com/code-payments/currencylayer/pkg/currency"
	"github.com/code-payments/currencylayer/pkg/currency/currencylayer"
	"github.com/code-payments/currencylayer/pkg/currency/fixer"
	"github.com/code-payments/currencylayer/pkg/metrics"
)

const (
	appName = "currencylayer"

	newRelicLicenseKeyConfigEnvName = "NEW_RELIC_LICENSE_KEY"

	newRelicShutdownTimeout = 5 * time.Second
)

func main() {
	log := logrus.StandardLogger().WithField("type", "cmd/currencylayer")

	app := newApp(os.Stdout, newClient)
	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("command failed")
	}
}

// newClient builds the rates client for the selected provider from the
// environment
func newClient(ctx context.Context, provider string) (currency.Client, error) {
	switch provider {
	case fixerProvider:
		return fixer.NewClientFromConfig(ctx, fixer.WithEnvConfigs())
	default:
		return currencylayer.NewClientFromConfig(ctx, currencylayer.WithEnvConfigs())
	}
}

// withNewRelic reports the command as a New Relic transaction and forwards
// logs when a license key is configured.
func withNewRelic(ctx context.Context, name string) (context.Context, func()) {
	licenseKey := env.NewStringConfig(newRelicLicenseKeyConfigEnvName, "").Get(ctx)
	if len(licenseKey) == 0 {
		return ctx, func() {}
	}

	log := logrus.StandardLogger().WithField("type", "cmd/currencylayer")

	nr, err := newrelic.NewApplication(
		newrelic.ConfigAppName(appName),
		newrelic.ConfigLicense(licenseKey),
		newrelic.ConfigAppLogForwardingEnabled(true),
	)
	if err != nil {
		log.WithError(err).Warn("failure initializing new relic, continuing without it")
		return ctx, func() {}
	}

	logrus.SetFormatter(metrics.NewCustomNewRelicLogFormatter(nr, &logrus.TextFormatter{}))

	txn := nr.StartTransaction(name)
	ctx = newrelic.NewContext(ctx, txn)
	ctx = metrics.WithNewRelic(ctx, nr)

	return ctx, func() {
		txn.End()
		nr.Shutdown(newRelicShutdownTimeout)
	}
}
