package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/Cheertaboi/bookstore-locale-service/internal/cache"
	"github.com/Cheertaboi/bookstore-locale-service/internal/concurrency"
	"github.com/Cheertaboi/bookstore-locale-service/internal/logger"
	"github.com/Cheertaboi/bookstore-locale-service/internal/models"
	"github.com/Cheertaboi/bookstore-locale-service/internal/storage"
)

const (
	DefaultRatesTTL  = time.Hour
	DefaultRatesBase = "USD"

	prefetchWorkers = 4

	// upper bound for one provider fetch shared by all waiting callers
	fetchTimeout = 15 * time.Second
)

// ExchangeRateService caches provider rate tables per base currency and
// converts prices with them. It is shared by every session.
type ExchangeRateService struct {
	provider RateProvider
	cache    *cache.RateCache
	store    *storage.Store
	base     string
	logger   *zap.Logger
	now      func() time.Time

	group singleflight.Group

	errMu  sync.RWMutex
	errors map[string]error
}

// NewExchangeRateService builds the service. store may be nil, in which case
// rates are only cached in memory.
func NewExchangeRateService(provider RateProvider, rc *cache.RateCache, store *storage.Store, base string) *ExchangeRateService {
	if base == "" {
		base = DefaultRatesBase
	}
	if rc == nil {
		rc = cache.NewRateCache(DefaultRatesTTL)
	}
	return &ExchangeRateService{
		provider: provider,
		cache:    rc,
		store:    store,
		base:     strings.ToUpper(base),
		logger:   logger.Log,
		now:      time.Now,
		errors:   make(map[string]error),
	}
}

// SetClock overrides the time source for fetch timestamps and freshness.
func (s *ExchangeRateService) SetClock(now func() time.Time) {
	s.now = now
	s.cache.SetClock(now)
}

// Base is the currency every conversion goes through.
func (s *ExchangeRateService) Base() string {
	return s.base
}

// GetExchangeRates returns the rate table for base, fetching when the cached
// one is missing or stale. When the fetch fails the previous table (possibly
// stale, possibly nil) is returned together with the error and kept as is.
// Only supported currencies are accepted as base.
func (s *ExchangeRateService) GetExchangeRates(ctx context.Context, base string) (map[string]float64, error) {
	base, err := supportedBase(base)
	if err != nil {
		return nil, err
	}

	if entry, ok, fresh := s.cache.Get(base); ok && fresh {
		return copyRates(entry.Rates), nil
	} else if !ok {
		if persisted, found := s.loadPersisted(base); found {
			s.cache.Set(persisted)
			if s.cache.Fresh(persisted) {
				return copyRates(persisted.Rates), nil
			}
		}
	}

	entry, err := s.sharedFetch(ctx, base)
	if err != nil {
		if entry, ok, _ := s.cache.Get(base); ok {
			s.logger.Warn("serving stale exchange rates",
				zap.String("base", base),
				zap.Time("fetched_at", entry.FetchedAt))
			return copyRates(entry.Rates), err
		}
		return nil, err
	}
	return copyRates(entry.Rates), nil
}

// RefreshRates drops the cached table for base unconditionally and fetches a
// new one.
func (s *ExchangeRateService) RefreshRates(ctx context.Context, base string) (map[string]float64, error) {
	base, err := supportedBase(base)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(base)
	s.persist()

	entry, err := s.sharedFetch(ctx, base)
	if err != nil {
		return nil, err
	}
	return copyRates(entry.Rates), nil
}

// sharedFetch joins or starts the single in-flight fetch for base. The fetch
// runs detached from ctx so one caller going away does not fail the others;
// ctx only bounds how long this caller waits.
func (s *ExchangeRateService) sharedFetch(ctx context.Context, base string) (models.RateEntry, error) {
	ch := s.group.DoChan(base, func() (interface{}, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), fetchTimeout)
		defer cancel()
		return s.fetch(fetchCtx, base)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return models.RateEntry{}, res.Err
		}
		return res.Val.(models.RateEntry), nil
	case <-ctx.Done():
		return models.RateEntry{}, ctx.Err()
	}
}

// LastError is the error of the most recent fetch for base, nil after a
// successful one.
func (s *ExchangeRateService) LastError(base string) error {
	s.errMu.RLock()
	defer s.errMu.RUnlock()
	return s.errors[strings.ToUpper(base)]
}

// Entry exposes the cached table for base and whether it is fresh.
func (s *ExchangeRateService) Entry(base string) (models.RateEntry, bool, bool) {
	return s.cache.Get(strings.ToUpper(base))
}

// ConvertPrice converts amount between currencies through the base table.
// Converting a currency to itself never touches the cache.
func (s *ExchangeRateService) ConvertPrice(ctx context.Context, amount float64, from, to string) (models.ConvertedPrice, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return models.ConvertedPrice{}, models.ErrInvalidAmount
	}
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)
	if from == to {
		return models.ConvertedPrice{ConvertedAmount: amount, Rate: 1}, nil
	}

	rates, err := s.GetExchangeRates(ctx, s.base)
	if rates == nil {
		if err == nil {
			err = fmt.Errorf("no rates for %s", s.base)
		}
		return models.ConvertedPrice{}, fmt.Errorf("%w: %s to %s: %v", models.ErrConversionUnavailable, from, to, err)
	}

	fromRate, toRate := rates[from], rates[to]
	if from == s.base {
		fromRate = 1
	}
	if to == s.base {
		toRate = 1
	}
	if fromRate <= 0 || toRate <= 0 {
		return models.ConvertedPrice{}, fmt.Errorf("%w: %s to %s: currency not in rate table", models.ErrConversionUnavailable, from, to)
	}

	rate := toRate / fromRate
	return models.ConvertedPrice{ConvertedAmount: amount * rate, Rate: rate}, nil
}

// Prefetch warms the cache for several bases concurrently.
func (s *ExchangeRateService) Prefetch(ctx context.Context, bases []string) {
	concurrency.SimpleWorkerPool(ctx, prefetchWorkers, len(bases), func(ctx context.Context, i int) {
		if _, err := s.GetExchangeRates(ctx, bases[i]); err != nil {
			s.logger.Warn("exchange rate prefetch failed",
				zap.String("base", bases[i]),
				zap.Error(err))
		}
	})
}

func (s *ExchangeRateService) fetch(ctx context.Context, base string) (models.RateEntry, error) {
	rates, err := s.provider.LatestRates(ctx, base)
	if err == nil && len(rates) == 0 {
		err = fmt.Errorf("provider returned no rates for %s", base)
	}
	if err != nil {
		s.setError(base, err)
		s.logger.Warn("failed to fetch exchange rates",
			zap.String("base", base),
			zap.Error(err))
		return models.RateEntry{}, err
	}

	entry := models.RateEntry{
		BaseCurrency: base,
		Rates:        copyRates(rates),
		FetchedAt:    s.now(),
	}
	s.cache.Set(entry)
	s.setError(base, nil)
	s.persist()

	s.logger.Debug("exchange rates fetched",
		zap.String("base", base),
		zap.Int("currencies", len(rates)))
	return entry, nil
}

func supportedBase(base string) (string, error) {
	base = strings.ToUpper(strings.TrimSpace(base))
	if _, ok := currencies[base]; !ok {
		return "", fmt.Errorf("%w: %q", models.ErrUnsupportedCurrency, base)
	}
	return base, nil
}

func (s *ExchangeRateService) setError(base string, err error) {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	if err == nil {
		delete(s.errors, base)
		return
	}
	s.errors[base] = err
}

func (s *ExchangeRateService) loadPersisted(base string) (models.RateEntry, bool) {
	if s.store == nil {
		return models.RateEntry{}, false
	}
	var all map[string]models.RateEntry
	if !s.store.Get(storage.KeyExchangeRates, &all) {
		return models.RateEntry{}, false
	}
	entry, ok := all[base]
	if !ok || len(entry.Rates) == 0 {
		return models.RateEntry{}, false
	}
	return entry, true
}

func (s *ExchangeRateService) persist() {
	if s.store == nil {
		return
	}
	if err := s.store.Set(storage.KeyExchangeRates, s.cache.Snapshot()); err != nil {
		s.logger.Warn("failed to persist exchange rates", zap.Error(err))
	}
}

func copyRates(in map[string]float64) map[string]float64 {
	if in == nil {
		return nil
	}
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
