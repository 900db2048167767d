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

func TestLocationStore_ManualSelectionSkipsDetection(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storage.NewMemoryStore()

	first := service.NewLocationStore(mocks.NewMockLocationResolver(ctrl), store)
	_, err := first.SetManualLocation(models.LocationInfo{CountryCode: "in"})
	require.NoError(t, err)

	// a later visit with the same storage must not geolocate
	resolver := mocks.NewMockLocationResolver(ctrl)
	resolver.EXPECT().ResolveLocation(gomock.Any(), gomock.Any()).Times(0)

	next := service.NewLocationStore(resolver, store)
	state := next.Initialize(context.Background(), "203.0.113.7")

	assert.Equal(t, models.SourceManual, state.Source)
	assert.Equal(t, "IN", state.Code())
	require.NotNil(t, state.Country)
	assert.Equal(t, "India", *state.Country)
}

func TestLocationStore_DetectsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockLocationResolver(ctrl)
	resolver.EXPECT().
		ResolveLocation(gomock.Any(), "203.0.113.7").
		Return(&models.LocationInfo{Country: "Germany", CountryCode: "DE", City: "Berlin"}).
		Times(1)

	loc := service.NewLocationStore(resolver, storage.NewMemoryStore())

	state := loc.Initialize(context.Background(), "203.0.113.7")
	assert.Equal(t, models.SourceFetched, state.Source)
	assert.Equal(t, "DE", state.Code())
	require.NotNil(t, state.City)
	assert.Equal(t, "Berlin", *state.City)

	again := loc.Initialize(context.Background(), "203.0.113.7")
	assert.Equal(t, state, again)
}

func TestLocationStore_DefaultsWhenDetectionFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockLocationResolver(ctrl)
	resolver.EXPECT().ResolveLocation(gomock.Any(), gomock.Any()).Return(nil)

	loc := service.NewLocationStore(resolver, storage.NewMemoryStore())
	state := loc.Initialize(context.Background(), "")

	assert.Equal(t, models.SourceFetched, state.Source)
	assert.Equal(t, "US", state.Code())
	require.NotNil(t, state.Country)
	assert.Equal(t, "United States", *state.Country)

	_, initialized := loc.State()
	assert.True(t, initialized)
}

func TestLocationStore_CancelledDetectionIsNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockLocationResolver(ctrl)
	resolver.EXPECT().ResolveLocation(gomock.Any(), gomock.Any()).Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loc := service.NewLocationStore(resolver, storage.NewMemoryStore())
	state := loc.Initialize(ctx, "")
	assert.Equal(t, "US", state.Code())

	_, initialized := loc.State()
	assert.False(t, initialized)
}

func TestLocationStore_FetchedNeverOverridesManual(t *testing.T) {
	ctrl := gomock.NewController(t)
	loc := service.NewLocationStore(mocks.NewMockLocationResolver(ctrl), storage.NewMemoryStore())

	_, err := loc.SetManualLocation(models.LocationInfo{Country: "Japan", CountryCode: "JP"})
	require.NoError(t, err)

	changed := loc.SetFetchedLocation(models.LocationInfo{Country: "France", CountryCode: "FR"})
	assert.False(t, changed)

	state, _ := loc.State()
	assert.Equal(t, models.SourceManual, state.Source)
	assert.Equal(t, "JP", state.Code())
}

func TestLocationStore_ManualOverridesFetched(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockLocationResolver(ctrl)
	resolver.EXPECT().ResolveLocation(gomock.Any(), gomock.Any()).
		Return(&models.LocationInfo{Country: "France", CountryCode: "FR"})

	loc := service.NewLocationStore(resolver, storage.NewMemoryStore())
	loc.Initialize(context.Background(), "")

	state, err := loc.SetManualLocation(models.LocationInfo{CountryCode: "GB"})
	require.NoError(t, err)
	assert.Equal(t, models.SourceManual, state.Source)
	assert.Equal(t, "GB", state.Code())
}

func TestLocationStore_RejectsInvalidCountry(t *testing.T) {
	ctrl := gomock.NewController(t)
	loc := service.NewLocationStore(mocks.NewMockLocationResolver(ctrl), storage.NewMemoryStore())

	for _, code := range []string{"", "USA", "1A", "u"} {
		_, err := loc.SetManualLocation(models.LocationInfo{CountryCode: code})
		require.Error(t, err, code)
		assert.True(t, errors.Is(err, models.ErrInvalidCountry))
	}

	_, initialized := loc.State()
	assert.False(t, initialized)
}

func TestLocationStore_ClearManualDetectsAgain(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockLocationResolver(ctrl)
	resolver.EXPECT().ResolveLocation(gomock.Any(), gomock.Any()).
		Return(&models.LocationInfo{Country: "Canada", CountryCode: "CA"})

	store := storage.NewMemoryStore()
	loc := service.NewLocationStore(resolver, store)
	_, err := loc.SetManualLocation(models.LocationInfo{CountryCode: "IN"})
	require.NoError(t, err)

	state := loc.ClearManualLocation(context.Background(), "")
	assert.Equal(t, models.SourceFetched, state.Source)
	assert.Equal(t, "CA", state.Code())

	var rec map[string]interface{}
	assert.False(t, store.Get(storage.KeyManualCountry, &rec))
}
