package apilayer_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/h2non/gock.v1"

	"github.com/code-payments/currencylayer/pkg/currency/apilayer"
	"github.com/code-payments/currencylayer/pkg/testutil"
)

func TestGet_HappyPath(t *testing.T) {
	defer testutil.CloseGock(t)

	gock.New("http://apilayer.test").
		Get("/api/live").
		MatchParam("currencies", "^GBP,CAD$").
		MatchParam("format", "^1$").
		MatchHeader("Apikey", "^secret$").
		Reply(200).
		BodyString(`{"success":true}`)

	query := url.Values{}
	query.Set("currencies", "GBP,CAD")
	query.Set("format", "1")
	header := http.Header{}
	header.Set("apikey", "secret")

	body, err := apilayer.Get(context.Background(), apilayer.NewHTTPClient(0), "http://apilayer.test/api/live", query, header)
	require.NoError(t, err)
	assert.Equal(t, `{"success":true}`, string(body))
}

func TestGet_Non2xx(t *testing.T) {
	defer testutil.CloseGock(t)

	gock.New("http://apilayer.test").
		Get("/api/live").
		Reply(503).
		BodyString(`{"success":true}`)

	_, err := apilayer.Get(context.Background(), apilayer.NewHTTPClient(0), "http://apilayer.test/api/live", nil, nil)
	assert.True(t, errors.Is(err, apilayer.ErrTransport))
	assert.Contains(t, err.Error(), "503")
}

func TestGet_NetworkError(t *testing.T) {
	defer testutil.CloseGock(t)

	gock.New("http://apilayer.test").
		Get("/api/live").
		ReplyError(errors.New("connection reset"))

	_, err := apilayer.Get(context.Background(), apilayer.NewHTTPClient(0), "http://apilayer.test/api/live", nil, nil)
	assert.True(t, errors.Is(err, apilayer.ErrTransport))
	assert.False(t, errors.Is(err, apilayer.ErrParse))
}

func TestGet_CancelledContext(t *testing.T) {
	defer testutil.CloseGock(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := apilayer.Get(ctx, apilayer.NewHTTPClient(0), "http://apilayer.test/api/live", nil, nil)
	assert.True(t, errors.Is(err, apilayer.ErrTransport))
	assert.True(t, errors.Is(err, context.Canceled))
}
