// Package storage is the durable key/value storage behind each browser session.
// Values are JSON records. Read failures are treated as "no stored value".
package storage

import (
	"encoding/json"

	"github.com/philippgille/gokv"
	"github.com/philippgille/gokv/encoding"
	"github.com/philippgille/gokv/file"
	"github.com/philippgille/gokv/syncmap"
	"go.uber.org/zap"

	"github.com/Cheertaboi/bookstore-locale-service/internal/logger"
)

const (
	KeyManualCountry     = "manual_country_selection"
	KeyPreferredCurrency = "user_preferred_currency"
	KeyExchangeRates     = "exchange_rates_cache"
	KeyUserLocation      = "userLocation"
	KeySessionRegistry   = "session_registry"
)

// SessionKeys are the keys a session owns and removes on teardown.
var SessionKeys = []string{KeyManualCountry, KeyPreferredCurrency, KeyUserLocation}

type Store struct {
	kv     gokv.Store
	prefix string
}

func New(kv gokv.Store) *Store {
	return &Store{kv: kv}
}

// NewFileStore persists one JSON file per key under dir.
func NewFileStore(dir string) (*Store, error) {
	ext := "json"
	kv, err := file.NewStore(file.Options{
		Directory:         dir,
		FilenameExtension: &ext,
		Codec:             encoding.JSON,
	})
	if err != nil {
		return nil, err
	}
	return New(kv), nil
}

func NewMemoryStore() *Store {
	return New(syncmap.NewStore(syncmap.Options{Codec: encoding.JSON}))
}

// Scoped returns a view of the same store whose keys are prefixed.
func (s *Store) Scoped(prefix string) *Store {
	return &Store{kv: s.kv, prefix: s.prefix + prefix + "-"}
}

// Get decodes the value under key into v. Any store error is logged and
// reported as not found.
func (s *Store) Get(key string, v interface{}) bool {
	found, err := s.kv.Get(s.prefix+key, v)
	if err != nil {
		logger.Warn("storage read failed, treating as empty",
			zap.String("key", s.prefix+key),
			zap.Error(err))
		return false
	}
	return found
}

// Has reports whether a value is stored under key.
func (s *Store) Has(key string) bool {
	var raw json.RawMessage
	return s.Get(key, &raw)
}

func (s *Store) Set(key string, v interface{}) error {
	return s.kv.Set(s.prefix+key, v)
}

func (s *Store) Delete(key string) error {
	return s.kv.Delete(s.prefix + key)
}

// Close closes the underlying store. Scoped views share it.
func (s *Store) Close() error {
	return s.kv.Close()
}
