package repository

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/Cheertaboi/bookstore-locale-service/internal/models"
)

// CouponRepo reads admin-configured subtotal coupons.
type CouponRepo struct {
	db *sql.DB
}

func NewCouponRepo(db *sql.DB) *CouponRepo {
	return &CouponRepo{db: db}
}

func (r *CouponRepo) ListCoupons(ctx context.Context) ([]models.Coupon, error) {
	query := `
		SELECT id, code, min_subtotal, description, discount_type, discount_value
		FROM coupons
		WHERE is_active
		ORDER BY min_subtotal ASC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "list coupons")
	}
	defer rows.Close()

	var coupons []models.Coupon
	for rows.Next() {
		var c models.Coupon
		if err := rows.Scan(&c.ID, &c.Code, &c.MinSubtotal, &c.Description, &c.DiscountType, &c.DiscountValue); err != nil {
			return nil, errors.Wrap(err, "scan coupon")
		}
		coupons = append(coupons, c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate coupons")
	}
	return coupons, nil
}

func (r *CouponRepo) GetCoupon(ctx context.Context, code string) (*models.Coupon, error) {
	query := `
		SELECT id, code, min_subtotal, description, discount_type, discount_value
		FROM coupons
		WHERE upper(code) = upper($1) AND is_active
	`
	var c models.Coupon
	err := r.db.QueryRowContext(ctx, query, code).Scan(
		&c.ID,
		&c.Code,
		&c.MinSubtotal,
		&c.Description,
		&c.DiscountType,
		&c.DiscountValue,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "get coupon %s", code)
	}
	return &c, nil
}
