package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetries() *RetryConfig {
	return &RetryConfig{
		MaxRetries:           2,
		InitialInterval:      time.Millisecond,
		MaxInterval:          5 * time.Millisecond,
		RetryableStatusCodes: []int{http.StatusServiceUnavailable},
	}
}

func TestClient_GetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v6/latest/USD", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "secret", r.Header.Get("X-Key"))
		w.Write([]byte(`{"name":"ok"}`))
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL+"/"), WithRetryConfig(nil))

	var out struct {
		Name string `json:"name"`
	}
	err := c.GetJSON(context.Background(), "v6/latest/USD", &out,
		WithQueryParam("page", "1"), WithHeader("X-Key", "secret"))
	require.NoError(t, err)
	assert.Equal(t, "ok", out.Name)
}

func TestClient_RetriesRetryableStatus(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL), WithRetryConfig(fastRetries()))

	var out map[string]interface{}
	require.NoError(t, c.GetJSON(context.Background(), "/", &out))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL), WithRetryConfig(fastRetries()))

	var out map[string]interface{}
	err := c.GetJSON(context.Background(), "/missing", &out)
	require.Error(t, err)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL), WithRetryConfig(nil))

	var out map[string]interface{}
	assert.Error(t, c.GetJSON(context.Background(), "/", &out))
}
