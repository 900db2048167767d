package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Cheertaboi/bookstore-locale-service/internal/mocks"
	"github.com/Cheertaboi/bookstore-locale-service/internal/models"
	"github.com/Cheertaboi/bookstore-locale-service/internal/service"
	"github.com/Cheertaboi/bookstore-locale-service/internal/storage"
)

func TestGetCurrencyForCountry(t *testing.T) {
	tests := []struct {
		country string
		want    string
	}{
		{"IN", "INR"},
		{"in", "INR"},
		{"DE", "EUR"},
		{"GB", "GBP"},
		{"JP", "JPY"},
		{"US", "USD"},
		{"ZZ", "USD"},
		{"", "USD"},
	}
	for _, tt := range tests {
		t.Run(tt.country, func(t *testing.T) {
			assert.Equal(t, tt.want, service.GetCurrencyForCountry(tt.country))
			assert.Equal(t, tt.want, service.GetCurrencyForCountry(tt.country), "lookup is deterministic")
		})
	}
}

func TestCountryCurrenciesAreSupported(t *testing.T) {
	for country, code := range service.CountryCurrencies() {
		_, ok := service.LookupCurrency(code)
		assert.True(t, ok, "%s maps to unsupported %s", country, code)
	}
}

func TestSupportedCurrenciesSorted(t *testing.T) {
	list := service.SupportedCurrencies()
	require.NotEmpty(t, list)
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].Code, list[i].Code)
	}
}

func TestRoundAndFormat(t *testing.T) {
	assert.Equal(t, "12.35", service.RoundForCurrency(12.345, "USD").StringFixed(2))
	assert.Equal(t, "1235", service.RoundForCurrency(1234.5, "JPY").String())
	assert.Equal(t, "$5.00", service.FormatPrice(5, "USD"))
	assert.Equal(t, "₹1234.50", service.FormatPrice(1234.5, "INR"))
	assert.Equal(t, "XYZ 3.00", service.FormatPrice(3, "XYZ"))
}

func TestCurrencyResolver_PreferenceBeatsLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockLocationResolver(ctrl)
	resolver.EXPECT().ResolveLocation(gomock.Any(), gomock.Any()).
		Return(&models.LocationInfo{Country: "India", CountryCode: "IN"}).
		AnyTimes()

	store := storage.NewMemoryStore()
	cur := service.NewCurrencyResolver(store, service.NewLocationStore(resolver, store))
	ctx := context.Background()

	assert.Equal(t, "INR", cur.GetPreferredCurrency(ctx, ""))
	assert.False(t, cur.HasPreference())

	require.NoError(t, cur.SetPreferredCurrency("eur"))
	assert.Equal(t, "EUR", cur.GetPreferredCurrency(ctx, ""))
	assert.True(t, cur.HasPreference())

	cur.ClearPreferredCurrency()
	assert.Equal(t, "INR", cur.GetPreferredCurrency(ctx, ""))
}

func TestCurrencyResolver_PreferencePersists(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storage.NewMemoryStore()

	first := service.NewCurrencyResolver(store, nil)
	require.NoError(t, first.SetPreferredCurrency("GBP"))

	resolver := mocks.NewMockLocationResolver(ctrl)
	next := service.NewCurrencyResolver(store, service.NewLocationStore(resolver, store))
	assert.Equal(t, "GBP", next.GetPreferredCurrency(context.Background(), ""))
}

func TestCurrencyResolver_RejectsUnsupported(t *testing.T) {
	cur := service.NewCurrencyResolver(storage.NewMemoryStore(), nil)

	err := cur.SetPreferredCurrency("ABC")
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrUnsupportedCurrency))
	assert.Equal(t, "USD", cur.GetPreferredCurrency(context.Background(), ""))
}

func TestCurrencyResolver_ManualCountryDrivesCurrency(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storage.NewMemoryStore()
	loc := service.NewLocationStore(mocks.NewMockLocationResolver(ctrl), store)
	_, err := loc.SetManualLocation(models.LocationInfo{CountryCode: "JP"})
	require.NoError(t, err)

	cur := service.NewCurrencyResolver(store, loc)
	assert.Equal(t, "JPY", cur.GetPreferredCurrency(context.Background(), ""))
}
