// Package session holds per-visitor state: a storage namespace plus the
// location and currency resolvers that read from it.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Cheertaboi/bookstore-locale-service/internal/logger"
	"github.com/Cheertaboi/bookstore-locale-service/internal/models"
	"github.com/Cheertaboi/bookstore-locale-service/internal/service"
	"github.com/Cheertaboi/bookstore-locale-service/internal/storage"
)

const DefaultIdleTTL = 24 * time.Hour

type Session struct {
	ID       string
	Storage  *storage.Store
	Location *service.LocationStore
	Currency *service.CurrencyResolver

	mu       sync.Mutex
	lastSeen time.Time
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Manager creates and tracks sessions. All sessions share one resolver and
// one backing store, each under its own key prefix. Live session IDs are kept
// in a registry in the store so sessions survive a restart.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	store    *storage.Store
	resolver service.LocationResolver
	idleTTL  time.Duration
	now      func() time.Time
	logger   *zap.Logger

	// serializes registry writes so an older snapshot never overwrites a newer one
	regMu sync.Mutex
}

func NewManager(store *storage.Store, resolver service.LocationResolver, idleTTL time.Duration) *Manager {
	if idleTTL <= 0 {
		idleTTL = DefaultIdleTTL
	}
	m := &Manager{
		sessions: make(map[string]*Session),
		store:    store,
		resolver: resolver,
		idleTTL:  idleTTL,
		now:      time.Now,
		logger:   logger.Log,
	}
	m.loadRegistry()
	return m
}

// SetClock overrides the time source used for idle expiry.
func (m *Manager) SetClock(now func() time.Time) {
	m.now = now
}

func (m *Manager) Create() *Session {
	s := m.newSession(uuid.New().String(), m.now())

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	m.saveRegistry()

	m.logger.Debug("session created", zap.String("session_id", s.ID))
	return s
}

func (m *Manager) newSession(id string, lastSeen time.Time) *Session {
	scoped := m.store.Scoped(id)
	location := service.NewLocationStore(m.resolver, scoped)
	return &Session{
		ID:       id,
		Storage:  scoped,
		Location: location,
		Currency: service.NewCurrencyResolver(scoped, location),
		lastSeen: lastSeen,
	}
}

// Get returns a live session and marks it as used. A session missing from
// memory but with state left in storage is rebuilt under the same ID.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		if s, ok = m.restore(id); !ok {
			return nil, fmt.Errorf("%w: %s", models.ErrUnknownSession, id)
		}
	}

	now := m.now()
	if now.Sub(s.idleSince()) > m.idleTTL {
		m.End(id)
		return nil, fmt.Errorf("%w: %s expired", models.ErrUnknownSession, id)
	}
	s.touch(now)
	return s, nil
}

func (m *Manager) restore(id string) (*Session, bool) {
	parsed, err := uuid.Parse(id)
	if err != nil || parsed.String() != id {
		return nil, false
	}

	scoped := m.store.Scoped(id)
	found := false
	for _, key := range storage.SessionKeys {
		if scoped.Has(key) {
			found = true
			break
		}
	}
	if !found {
		return nil, false
	}

	m.mu.Lock()
	s, ok := m.sessions[id]
	if !ok {
		s = m.newSession(id, m.now())
		m.sessions[id] = s
	}
	m.mu.Unlock()
	if !ok {
		m.saveRegistry()
		m.logger.Info("session restored from storage", zap.String("session_id", id))
	}
	return s, true
}

// End forgets the session and deletes everything it stored. Ending an unknown
// session is a no-op.
func (m *Manager) End(id string) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return
	}

	for _, key := range storage.SessionKeys {
		if err := s.Storage.Delete(key); err != nil {
			m.logger.Warn("failed to delete session key",
				zap.String("session_id", id),
				zap.String("key", key),
				zap.Error(err))
		}
	}
	m.saveRegistry()
	m.logger.Debug("session ended", zap.String("session_id", id))
}

// Len is the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep ends every session idle for longer than the TTL and returns how many
// it ended. It also records last-use times in the registry.
func (m *Manager) Sweep() int {
	now := m.now()

	m.mu.RLock()
	var expired []string
	for id, s := range m.sessions {
		if now.Sub(s.idleSince()) > m.idleTTL {
			expired = append(expired, id)
		}
	}
	m.mu.RUnlock()

	for _, id := range expired {
		m.End(id)
	}
	m.saveRegistry()
	return len(expired)
}

// RunJanitor sweeps on every tick until ctx is done.
func (m *Manager) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Sweep(); n > 0 {
				m.logger.Info("expired idle sessions", zap.Int("count", n))
			}
		}
	}
}

// loadRegistry brings back the sessions of a previous process with their
// recorded last use, so idle ones still expire and have their keys deleted.
func (m *Manager) loadRegistry() {
	var registry map[string]time.Time
	if !m.store.Get(storage.KeySessionRegistry, &registry) {
		return
	}
	for id, lastSeen := range registry {
		m.sessions[id] = m.newSession(id, lastSeen)
	}
	m.logger.Info("sessions restored", zap.Int("count", len(registry)))
}

func (m *Manager) saveRegistry() {
	m.regMu.Lock()
	defer m.regMu.Unlock()

	m.mu.RLock()
	registry := make(map[string]time.Time, len(m.sessions))
	for id, s := range m.sessions {
		registry[id] = s.idleSince()
	}
	m.mu.RUnlock()

	if err := m.store.Set(storage.KeySessionRegistry, registry); err != nil {
		m.logger.Warn("failed to persist session registry", zap.Error(err))
	}
}
