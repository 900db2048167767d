package session

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Cheertaboi/bookstore-locale-service/internal/mocks"
	"github.com/Cheertaboi/bookstore-locale-service/internal/models"
	"github.com/Cheertaboi/bookstore-locale-service/internal/storage"
)

func TestManager_CreateAndGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewManager(storage.NewMemoryStore(), mocks.NewMockLocationResolver(ctrl), time.Hour)

	s := m.Create()
	_, err := uuid.Parse(s.ID)
	require.NoError(t, err)

	got, err := m.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)
	assert.Equal(t, 1, m.Len())
}

func TestManager_UnknownSession(t *testing.T) {
	m := NewManager(storage.NewMemoryStore(), nil, time.Hour)

	_, err := m.Get("nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrUnknownSession))
}

func TestManager_SessionsAreIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewManager(storage.NewMemoryStore(), mocks.NewMockLocationResolver(ctrl), time.Hour)

	a, b := m.Create(), m.Create()
	require.NoError(t, a.Currency.SetPreferredCurrency("EUR"))

	assert.True(t, a.Currency.HasPreference())
	assert.False(t, b.Currency.HasPreference())
}

func TestManager_EndDeletesStoredKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storage.NewMemoryStore()
	m := NewManager(store, mocks.NewMockLocationResolver(ctrl), time.Hour)

	s := m.Create()
	require.NoError(t, s.Currency.SetPreferredCurrency("GBP"))
	_, err := s.Location.SetManualLocation(models.LocationInfo{CountryCode: "GB"})
	require.NoError(t, err)

	m.End(s.ID)

	_, err = m.Get(s.ID)
	assert.True(t, errors.Is(err, models.ErrUnknownSession))

	var v map[string]interface{}
	scoped := store.Scoped(s.ID)
	for _, key := range storage.SessionKeys {
		assert.False(t, scoped.Get(key, &v), key)
	}

	m.End(s.ID)
}

func TestManager_IdleExpiry(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	m := NewManager(storage.NewMemoryStore(), nil, time.Hour)
	m.SetClock(func() time.Time { return now })

	idle := m.Create()
	active := m.Create()

	now = now.Add(40 * time.Minute)
	_, err := m.Get(active.ID)
	require.NoError(t, err)

	now = now.Add(30 * time.Minute)
	assert.Equal(t, 1, m.Sweep())

	_, err = m.Get(idle.ID)
	assert.True(t, errors.Is(err, models.ErrUnknownSession))
	_, err = m.Get(active.ID)
	assert.NoError(t, err)
}

func TestManager_GetExpiresStaleSession(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	m := NewManager(storage.NewMemoryStore(), nil, time.Minute)
	m.SetClock(func() time.Time { return now })

	s := m.Create()
	now = now.Add(2 * time.Minute)

	_, err := m.Get(s.ID)
	assert.True(t, errors.Is(err, models.ErrUnknownSession))
	assert.Zero(t, m.Len())
}

func TestManager_RunJanitorStops(t *testing.T) {
	m := NewManager(storage.NewMemoryStore(), nil, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		m.RunJanitor(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}

func TestManager_SessionsSurviveRestart(t *testing.T) {
	dir := t.TempDir()
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockLocationResolver(ctrl)
	resolver.EXPECT().ResolveLocation(gomock.Any(), gomock.Any()).Times(0)

	store, err := storage.NewFileStore(dir)
	require.NoError(t, err)
	s := NewManager(store, resolver, time.Hour).Create()
	_, err = s.Location.SetManualLocation(models.LocationInfo{Country: "India", CountryCode: "IN"})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := storage.NewFileStore(dir)
	require.NoError(t, err)
	m := NewManager(reopened, resolver, time.Hour)
	assert.Equal(t, 1, m.Len())

	got, err := m.Get(s.ID)
	require.NoError(t, err)
	state := got.Location.Initialize(context.Background(), "203.0.113.9")
	assert.Equal(t, models.SourceManual, state.Source)
	assert.Equal(t, "IN", state.Code())
}

func TestManager_RestoredIdleSessionIsSwept(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	store := storage.NewMemoryStore()

	first := NewManager(store, nil, time.Hour)
	first.SetClock(func() time.Time { return now })
	s := first.Create()
	require.NoError(t, s.Currency.SetPreferredCurrency("EUR"))

	now = now.Add(2 * time.Hour)
	m := NewManager(store, nil, time.Hour)
	m.SetClock(func() time.Time { return now })
	require.Equal(t, 1, m.Len())

	assert.Equal(t, 1, m.Sweep())
	assert.False(t, store.Scoped(s.ID).Has(storage.KeyPreferredCurrency))

	_, err := m.Get(s.ID)
	assert.True(t, errors.Is(err, models.ErrUnknownSession))
	assert.Zero(t, NewManager(store, nil, time.Hour).Len())
}

func TestManager_GetRebuildsSessionFromStoredKeys(t *testing.T) {
	store := storage.NewMemoryStore()
	id := uuid.New().String()
	scoped := store.Scoped(id)
	require.NoError(t, scoped.Set(storage.KeyPreferredCurrency, map[string]string{"code": "GBP"}))

	m := NewManager(store, nil, time.Hour)
	got, err := m.Get(id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.True(t, got.Currency.HasPreference())
	assert.Equal(t, 1, m.Len())

	again, err := m.Get(id)
	require.NoError(t, err)
	assert.Same(t, got, again)
}

func TestManager_GetDoesNotRebuildWithoutStoredKeys(t *testing.T) {
	m := NewManager(storage.NewMemoryStore(), nil, time.Hour)

	_, err := m.Get(uuid.New().String())
	assert.True(t, errors.Is(err, models.ErrUnknownSession))
	_, err = m.Get(strings.ToUpper(uuid.New().String()))
	assert.True(t, errors.Is(err, models.ErrUnknownSession))
	assert.Zero(t, m.Len())
}
