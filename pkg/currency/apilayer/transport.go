package apilayer

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"github.com/code-payments/currencylayer/pkg/metrics"
)

const (
	DefaultTimeout = 15 * time.Second

	requestDurationMetricName = "Apilayer/request_duration_ms"
)

// NewHTTPClient returns an HTTP client with the timeout, or DefaultTimeout
// when it is not positive.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{
		Timeout: timeout,
	}
}

// Get issues a single GET request and returns the full response body. Network
// failures and non-2xx statuses are returned as ErrTransport.
func Get(ctx context.Context, httpClient *http.Client, endpoint string, query url.Values, header http.Header) ([]byte, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, TransportError(err, "invalid endpoint")
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, TransportError(err, "failed to create request")
	}
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	start := time.Now()
	httpResp, err := httpClient.Do(req)
	metrics.RecordDuration(ctx, requestDurationMetricName, time.Since(start))
	if err != nil {
		return nil, TransportError(err, "failed to make request")
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, classify(ErrTransport, errors.Errorf("received non-2xx status code: %d", httpResp.StatusCode))
	}

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, TransportError(err, "failed to read response body")
	}
	return body, nil
}
