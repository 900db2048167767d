package service

import (
	"context"

	"github.com/Cheertaboi/bookstore-locale-service/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/mock_service.go -package=mocks

// RateProvider fetches a fresh rate table: units of each currency per one base.
type RateProvider interface {
	LatestRates(ctx context.Context, base string) (map[string]float64, error)
}

// LocationResolver geolocates an IP; nil means every provider failed.
type LocationResolver interface {
	ResolveLocation(ctx context.Context, ip string) *models.LocationInfo
}

// CouponSource lists the coupon table. Implementations return coupons sorted
// by ascending MinSubtotal; GetCoupon returns nil, nil for an unknown code.
type CouponSource interface {
	ListCoupons(ctx context.Context) ([]models.Coupon, error)
	GetCoupon(ctx context.Context, code string) (*models.Coupon, error)
}

// ShippingRateRepo returns nil, nil when no rate is configured for the country.
type ShippingRateRepo interface {
	GetByCountry(ctx context.Context, countryCode string) (*models.ShippingRate, error)
}
