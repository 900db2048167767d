package repository

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/Cheertaboi/bookstore-locale-service/internal/models"
)

type ShippingRepo struct {
	db *sql.DB
}

func NewShippingRepo(db *sql.DB) *ShippingRepo {
	return &ShippingRepo{db: db}
}

// GetByCountry returns nil, nil when the country has no configured rate.
func (r *ShippingRepo) GetByCountry(ctx context.Context, countryCode string) (*models.ShippingRate, error) {
	query := `
		SELECT country_code, shipping_cost, min_delivery_days, max_delivery_days
		FROM shipping_rates
		WHERE country_code = $1
	`
	var rate models.ShippingRate
	err := r.db.QueryRowContext(ctx, query, countryCode).Scan(
		&rate.CountryCode,
		&rate.ShippingCost,
		&rate.MinDeliveryDays,
		&rate.MaxDeliveryDays,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "get shipping rate for %s", countryCode)
	}
	return &rate, nil
}
