package exchangerates

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cheertaboi/bookstore-locale-service/pkg/httpclient"
)

func TestClient_LatestRates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v6/latest/USD", r.URL.Path)
		w.Write([]byte(`{"result":"success","base_code":"USD","rates":{"USD":1,"EUR":0.9,"inr":83.2,"BAD":0}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, httpclient.WithRetryConfig(nil))

	rates, err := c.LatestRates(context.Background(), "usd")
	require.NoError(t, err)
	assert.Equal(t, 1.0, rates["USD"])
	assert.Equal(t, 0.9, rates["EUR"])
	assert.Equal(t, 83.2, rates["INR"])
	assert.NotContains(t, rates, "BAD")
}

func TestClient_LatestRatesProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":"error","error-type":"unsupported-code"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, httpclient.WithRetryConfig(nil))

	_, err := c.LatestRates(context.Background(), "XXX")
	require.Error(t, err)

	var providerErr *Error
	require.True(t, errors.As(err, &providerErr))
	assert.Equal(t, "unsupported-code", providerErr.Message)
}

func TestClient_LatestRatesEmptyBase(t *testing.T) {
	c := NewClient("http://127.0.0.1:0")
	_, err := c.LatestRates(context.Background(), "")
	assert.Error(t, err)
}
