package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Cheertaboi/bookstore-locale-service/internal/geo"
	"github.com/Cheertaboi/bookstore-locale-service/internal/logger"
	"github.com/Cheertaboi/bookstore-locale-service/internal/models"
)

// ShippingService answers shipping quotes per destination country. Countries
// without a configured rate, and lookup failures, get the default rate.
type ShippingService struct {
	repo     ShippingRateRepo
	fallback models.ShippingRate
	logger   *zap.Logger
}

// NewShippingService builds the service; repo may be nil when no database is
// configured.
func NewShippingService(repo ShippingRateRepo, fallback models.ShippingRate) *ShippingService {
	fallback.IsDefault = true
	return &ShippingService{
		repo:     repo,
		fallback: fallback,
		logger:   logger.Log,
	}
}

func (s *ShippingService) GetShippingRate(ctx context.Context, countryCode string) (models.ShippingRate, error) {
	code := strings.ToUpper(strings.TrimSpace(countryCode))
	if !geo.ValidCountryCode(code) {
		return models.ShippingRate{}, fmt.Errorf("%w: %q", models.ErrInvalidCountry, countryCode)
	}

	if s.repo != nil {
		rate, err := s.repo.GetByCountry(ctx, code)
		switch {
		case err != nil:
			s.logger.Warn("shipping rate lookup failed, using default",
				zap.String("country_code", code),
				zap.Error(err))
		case rate != nil:
			out := *rate
			out.CountryCode = code
			out.IsDefault = false
			return out, nil
		}
	}

	out := s.fallback
	out.CountryCode = code
	return out, nil
}
