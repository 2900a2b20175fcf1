package metrics

import (
	"context"

	"github.com/newrelic/go-agent/v3/newrelic"
)

// RecordEvent records a custom event, eg. an upstream API error, with a set
// of key-value attributes
func RecordEvent(ctx context.Context, eventName string, kvPairs map[string]interface{}) {
	nr, ok := ctx.Value(NewRelicContextKey).(*newrelic.Application)
	if ok {
		nr.RecordCustomEvent(eventName, kvPairs)
	}
}
