package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Cheertaboi/bookstore-locale-service/internal/geo"
	"github.com/Cheertaboi/bookstore-locale-service/internal/logger"
	"github.com/Cheertaboi/bookstore-locale-service/internal/models"
	"github.com/Cheertaboi/bookstore-locale-service/internal/storage"
)

type manualSelectionRecord struct {
	Country     string    `json:"country"`
	CountryCode string    `json:"countryCode"`
	City        string    `json:"city,omitempty"`
	SelectedAt  time.Time `json:"selectedAt"`
}

// LocationStore holds one session's LocationState. A stored manual selection
// is read before any detection runs and is never replaced by a fetched one.
type LocationStore struct {
	mu          sync.Mutex
	resolver    LocationResolver
	store       *storage.Store
	state       models.LocationState
	initialized bool
	logger      *zap.Logger
}

func NewLocationStore(resolver LocationResolver, store *storage.Store) *LocationStore {
	return &LocationStore{
		resolver: resolver,
		store:    store,
		logger:   logger.Log,
	}
}

// State returns the current state and whether it has been initialized.
func (l *LocationStore) State() (models.LocationState, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state, l.initialized
}

// Initialize settles the state once per session: a stored manual selection
// if there is one, otherwise the geolocated country, otherwise the default.
// Concurrent callers wait for the first one.
func (l *LocationStore) Initialize(ctx context.Context, ip string) models.LocationState {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.initialized {
		return l.state
	}

	if rec, ok := l.loadManual(); ok {
		l.state = models.NewLocationState(models.SourceManual, models.LocationInfo{
			Country:     rec.Country,
			CountryCode: rec.CountryCode,
			City:        rec.City,
		})
		l.initialized = true
		return l.state
	}

	var info *models.LocationInfo
	if l.resolver != nil {
		info = l.resolver.ResolveLocation(ctx, ip)
	}
	if info == nil {
		def := geo.DefaultLocation()
		if ctx.Err() != nil {
			// the caller went away; answer with the default but detect again next time
			return models.NewLocationState(models.SourceFetched, def)
		}
		info = &def
	}

	l.applyFetched(*info)
	l.initialized = true
	return l.state
}

// SetFetchedLocation records a detection result unless a manual choice is in
// effect. It reports whether the state changed.
func (l *LocationStore) SetFetchedLocation(info models.LocationInfo) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.initialized && !models.SourceFetched.Outranks(l.state.Source) {
		l.logger.Debug("ignoring fetched location, manual selection in effect",
			zap.String("country_code", info.CountryCode))
		return false
	}
	l.applyFetched(info)
	l.initialized = true
	return true
}

// SetManualLocation records the user's explicit country and persists it.
func (l *LocationStore) SetManualLocation(info models.LocationInfo) (models.LocationState, error) {
	code := strings.ToUpper(strings.TrimSpace(info.CountryCode))
	if !geo.ValidCountryCode(code) {
		return models.LocationState{}, fmt.Errorf("%w: %q", models.ErrInvalidCountry, info.CountryCode)
	}
	info.CountryCode = code
	if info.Country == "" {
		info.Country = geo.CountryName(code)
	}
	if info.Country == "" {
		info.Country = code
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	rec := manualSelectionRecord{
		Country:     info.Country,
		CountryCode: info.CountryCode,
		City:        info.City,
		SelectedAt:  time.Now().UTC(),
	}
	if err := l.store.Set(storage.KeyManualCountry, rec); err != nil {
		l.logger.Warn("failed to persist manual country selection", zap.Error(err))
	}

	l.state = models.NewLocationState(models.SourceManual, info)
	l.initialized = true
	return l.state, nil
}

// ClearManualLocation forgets the manual selection and detects again.
func (l *LocationStore) ClearManualLocation(ctx context.Context, ip string) models.LocationState {
	l.mu.Lock()
	if err := l.store.Delete(storage.KeyManualCountry); err != nil {
		l.logger.Warn("failed to delete manual country selection", zap.Error(err))
	}
	l.state = models.LocationState{}
	l.initialized = false
	l.mu.Unlock()

	return l.Initialize(ctx, ip)
}

// applyFetched must be called with l.mu held.
func (l *LocationStore) applyFetched(info models.LocationInfo) {
	l.state = models.NewLocationState(models.SourceFetched, info)
	if err := l.store.Set(storage.KeyUserLocation, l.state); err != nil {
		l.logger.Warn("failed to persist detected location", zap.Error(err))
	}
}

func (l *LocationStore) loadManual() (manualSelectionRecord, bool) {
	var rec manualSelectionRecord
	if !l.store.Get(storage.KeyManualCountry, &rec) {
		return rec, false
	}
	rec.CountryCode = strings.ToUpper(rec.CountryCode)
	if !geo.ValidCountryCode(rec.CountryCode) {
		l.logger.Warn("ignoring malformed manual country selection",
			zap.String("country_code", rec.CountryCode))
		return rec, false
	}
	if rec.Country == "" {
		rec.Country = geo.CountryName(rec.CountryCode)
	}
	return rec, true
}
