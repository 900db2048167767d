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
)

var defaultShipping = models.ShippingRate{ShippingCost: 9.99, MinDeliveryDays: 7, MaxDeliveryDays: 14}

func TestShippingService_ConfiguredRate(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockShippingRateRepo(ctrl)
	repo.EXPECT().GetByCountry(gomock.Any(), "IN").
		Return(&models.ShippingRate{CountryCode: "IN", ShippingCost: 2.5, MinDeliveryDays: 3, MaxDeliveryDays: 5}, nil)

	svc := service.NewShippingService(repo, defaultShipping)
	rate, err := svc.GetShippingRate(context.Background(), "in")
	require.NoError(t, err)
	assert.False(t, rate.IsDefault)
	assert.Equal(t, 2.5, rate.ShippingCost)
	assert.Equal(t, 3, rate.MinDeliveryDays)
}

func TestShippingService_FallsBackToDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockShippingRateRepo(ctrl)
	repo.EXPECT().GetByCountry(gomock.Any(), "FR").Return(nil, nil)
	repo.EXPECT().GetByCountry(gomock.Any(), "DE").Return(nil, errors.New("db down"))

	svc := service.NewShippingService(repo, defaultShipping)

	for _, code := range []string{"FR", "DE"} {
		rate, err := svc.GetShippingRate(context.Background(), code)
		require.NoError(t, err)
		assert.True(t, rate.IsDefault)
		assert.Equal(t, code, rate.CountryCode)
		assert.Equal(t, 9.99, rate.ShippingCost)
	}
}

func TestShippingService_NoRepository(t *testing.T) {
	svc := service.NewShippingService(nil, defaultShipping)
	rate, err := svc.GetShippingRate(context.Background(), "BR")
	require.NoError(t, err)
	assert.True(t, rate.IsDefault)
	assert.Equal(t, 14, rate.MaxDeliveryDays)
}

func TestShippingService_InvalidCountry(t *testing.T) {
	svc := service.NewShippingService(nil, defaultShipping)
	_, err := svc.GetShippingRate(context.Background(), "BRA")
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrInvalidCountry))
}
