package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Cheertaboi/bookstore-locale-service/internal/logger"
	"github.com/Cheertaboi/bookstore-locale-service/internal/models"
	"github.com/Cheertaboi/bookstore-locale-service/internal/storage"
)

const DefaultCurrency = "USD"

// GetCurrencyForCountry maps an ISO country code to its currency, USD when
// the country is unknown.
func GetCurrencyForCountry(countryCode string) string {
	if code, ok := countryCurrency[strings.ToUpper(strings.TrimSpace(countryCode))]; ok {
		return code
	}
	return DefaultCurrency
}

// CountryCurrencies returns a copy of the country to currency table.
func CountryCurrencies() map[string]string {
	out := make(map[string]string, len(countryCurrency))
	for k, v := range countryCurrency {
		out[k] = v
	}
	return out
}

func LookupCurrency(code string) (models.CurrencyInfo, bool) {
	info, ok := currencies[strings.ToUpper(code)]
	return info, ok
}

// SupportedCurrencies lists every currency, sorted by code.
func SupportedCurrencies() []models.CurrencyInfo {
	out := make([]models.CurrencyInfo, 0, len(currencies))
	for _, info := range currencies {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// RoundForCurrency rounds amount to the currency's minor unit.
func RoundForCurrency(amount float64, code string) decimal.Decimal {
	places, ok := currencyDecimals[strings.ToUpper(code)]
	if !ok {
		places = 2
	}
	return decimal.NewFromFloat(amount).Round(places)
}

// FormatPrice renders amount with the currency symbol, e.g. "₹1234.50".
func FormatPrice(amount float64, code string) string {
	code = strings.ToUpper(code)
	places, ok := currencyDecimals[code]
	if !ok {
		places = 2
	}
	symbol := code + " "
	if info, ok := currencies[code]; ok {
		symbol = info.Symbol
	}
	return symbol + decimal.NewFromFloat(amount).StringFixed(places)
}

type preferredCurrencyRecord struct {
	Code  string    `json:"code"`
	SetAt time.Time `json:"setAt"`
}

// CurrencyResolver tracks one session's display currency. An explicit choice
// always beats the currency derived from the session's location.
type CurrencyResolver struct {
	mu        sync.Mutex
	store     *storage.Store
	location  *LocationStore
	preferred string
	logger    *zap.Logger
}

func NewCurrencyResolver(store *storage.Store, location *LocationStore) *CurrencyResolver {
	return &CurrencyResolver{
		store:    store,
		location: location,
		logger:   logger.Log,
	}
}

// GetPreferredCurrency returns the explicit preference, or the currency of the
// session location (detecting it first if needed), or USD.
func (r *CurrencyResolver) GetPreferredCurrency(ctx context.Context, ip string) string {
	if code, ok := r.preference(); ok {
		return code
	}
	if r.location == nil {
		return DefaultCurrency
	}
	state := r.location.Initialize(ctx, ip)
	return GetCurrencyForCountry(state.Code())
}

// HasPreference reports whether the user picked a currency explicitly.
func (r *CurrencyResolver) HasPreference() bool {
	_, ok := r.preference()
	return ok
}

// SetPreferredCurrency records an explicit choice. A storage failure is
// logged; the choice then only lasts for the life of this resolver.
func (r *CurrencyResolver) SetPreferredCurrency(code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	if _, ok := currencies[code]; !ok {
		return fmt.Errorf("%w: %q", models.ErrUnsupportedCurrency, code)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.preferred = code
	if err := r.store.Set(storage.KeyPreferredCurrency, preferredCurrencyRecord{Code: code, SetAt: time.Now().UTC()}); err != nil {
		r.logger.Warn("failed to persist preferred currency", zap.Error(err))
	}
	return nil
}

func (r *CurrencyResolver) ClearPreferredCurrency() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.preferred = ""
	if err := r.store.Delete(storage.KeyPreferredCurrency); err != nil {
		r.logger.Warn("failed to delete preferred currency", zap.Error(err))
	}
}

func (r *CurrencyResolver) preference() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.preferred != "" {
		return r.preferred, true
	}
	var rec preferredCurrencyRecord
	if !r.store.Get(storage.KeyPreferredCurrency, &rec) {
		return "", false
	}
	code := strings.ToUpper(rec.Code)
	if _, ok := currencies[code]; !ok {
		return "", false
	}
	r.preferred = code
	return code, true
}
