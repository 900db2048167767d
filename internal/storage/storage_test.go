package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenKV struct{}

var errUnavailable = errors.New("storage unavailable")

func (brokenKV) Set(string, interface{}) error { return errUnavailable }
func (brokenKV) Get(string, interface{}) (bool, error) { return false, errUnavailable }
func (brokenKV) Delete(string) error { return errUnavailable }
func (brokenKV) Close() error { return nil }

type record struct {
	Code string `json:"code"`
}

func TestStore_RoundTrip(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()

	require.NoError(t, s.Set(KeyPreferredCurrency, record{Code: "EUR"}))

	var got record
	assert.True(t, s.Get(KeyPreferredCurrency, &got))
	assert.Equal(t, "EUR", got.Code)

	require.NoError(t, s.Delete(KeyPreferredCurrency))
	assert.False(t, s.Get(KeyPreferredCurrency, &got))
}

func TestStore_ScopedKeysDoNotCollide(t *testing.T) {
	root := NewMemoryStore()
	a := root.Scoped("a")
	b := root.Scoped("b")

	require.NoError(t, a.Set(KeyManualCountry, record{Code: "IN"}))

	var got record
	assert.False(t, b.Get(KeyManualCountry, &got))
	assert.False(t, root.Get(KeyManualCountry, &got))
	assert.True(t, a.Get(KeyManualCountry, &got))
}

func TestStore_UnavailableReadsAsMissing(t *testing.T) {
	s := New(brokenKV{})

	var got record
	assert.False(t, s.Get(KeyManualCountry, &got))
	assert.Error(t, s.Set(KeyManualCountry, record{Code: "IN"}))
}

func TestFileStore_Persists(t *testing.T) {
	dir := t.TempDir()

	s, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set(KeyUserLocation, record{Code: "GB"}))
	require.NoError(t, s.Close())

	reopened, err := NewFileStore(dir)
	require.NoError(t, err)
	var got record
	assert.True(t, reopened.Get(KeyUserLocation, &got))
	assert.Equal(t, "GB", got.Code)
}

func TestStore_Has(t *testing.T) {
	s := NewMemoryStore()
	assert.False(t, s.Has(KeySessionRegistry))

	require.NoError(t, s.Set(KeySessionRegistry, map[string]string{"id": "x"}))
	assert.True(t, s.Has(KeySessionRegistry))
	assert.False(t, s.Scoped("id").Has(KeySessionRegistry))
	assert.False(t, New(brokenKV{}).Has(KeySessionRegistry))
}
