package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Cheertaboi/bookstore-locale-service/internal/logger"
	"github.com/Cheertaboi/bookstore-locale-service/internal/models"
)

// coupon thresholds and fixed discounts are denominated in this currency
const couponCurrency = "USD"

const requestTimeout = 8 * time.Second

// PriceConverter converts an amount between two currencies.
type PriceConverter interface {
	ConvertPrice(ctx context.Context, amount float64, from, to string) (models.ConvertedPrice, error)
}

// DefaultCoupons is the storefront's built-in subtotal coupon table.
func DefaultCoupons() []models.Coupon {
	return []models.Coupon{
		{Code: "FIVEOFF-$99", MinSubtotal: 99, Description: "5% off orders of $99 or more", DiscountType: models.DiscountPercentage, DiscountValue: 5},
		{Code: "TENOFF-$499", MinSubtotal: 499, Description: "10% off orders of $499 or more", DiscountType: models.DiscountPercentage, DiscountValue: 10},
		{Code: "FIFTEENOFF-$999", MinSubtotal: 999, Description: "15% off orders of $999 or more", DiscountType: models.DiscountPercentage, DiscountValue: 15},
		{Code: "TWENTYOF-$1499", MinSubtotal: 1499, Description: "20% off orders of $1499 or more", DiscountType: models.DiscountPercentage, DiscountValue: 20},
	}
}

// StaticCoupons serves a fixed coupon table.
type StaticCoupons struct {
	coupons []models.Coupon
}

func NewStaticCoupons(coupons []models.Coupon) *StaticCoupons {
	sorted := make([]models.Coupon, len(coupons))
	copy(sorted, coupons)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].MinSubtotal < sorted[j].MinSubtotal })
	return &StaticCoupons{coupons: sorted}
}

func (s *StaticCoupons) ListCoupons(ctx context.Context) ([]models.Coupon, error) {
	out := make([]models.Coupon, len(s.coupons))
	copy(out, s.coupons)
	return out, nil
}

func (s *StaticCoupons) GetCoupon(ctx context.Context, code string) (*models.Coupon, error) {
	for _, c := range s.coupons {
		if strings.EqualFold(c.Code, code) {
			found := c
			return &found, nil
		}
	}
	return nil, nil
}

// CouponService picks and validates subtotal coupons. Subtotals arrive in the
// shopper's currency and are compared against USD thresholds after
// conversion; when conversion fails no coupon is offered.
type CouponService struct {
	source    CouponSource
	converter PriceConverter
	logger    *zap.Logger
}

func NewCouponService(source CouponSource, converter PriceConverter) *CouponService {
	return &CouponService{
		source:    source,
		converter: converter,
		logger:    logger.Log,
	}
}

// Evaluate selects the highest-threshold coupon the subtotal qualifies for.
func (s *CouponService) Evaluate(ctx context.Context, subtotal float64, currency string) (models.Eligibility, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	if !finite(subtotal) {
		return models.Eligibility{}, models.ErrInvalidAmount
	}
	currency = normalizeCurrency(currency)
	elig := models.Eligibility{Subtotal: subtotal, Currency: currency}
	if subtotal <= 0 {
		return elig, nil
	}

	usdSubtotal, ok := s.toCouponCurrency(ctx, subtotal, currency)
	if !ok {
		elig.ConversionFailed = true
		return elig, nil
	}
	elig.SubtotalUSD = usdSubtotal.InexactFloat64()

	coupons, err := s.source.ListCoupons(ctx)
	if err != nil {
		return elig, err
	}

	best := selectCoupon(coupons, usdSubtotal)
	if best == nil {
		return elig, nil
	}

	discount, err := s.discountFor(ctx, *best, subtotal, currency)
	if errors.Is(err, models.ErrUnsupportedDiscount) {
		s.logger.Warn("skipping coupon with unsupported discount type",
			zap.String("coupon", best.Code),
			zap.String("discount_type", best.DiscountType))
		return elig, nil
	}
	if err != nil {
		s.logger.Warn("coupon discount conversion failed, offering no coupon",
			zap.String("coupon", best.Code),
			zap.String("currency", currency),
			zap.Error(err))
		elig.ConversionFailed = true
		return elig, nil
	}

	elig.Coupon = best
	elig.Discount = discount
	return elig, nil
}

// LocalizedCoupons returns display copies of the coupon table with thresholds
// in currency. If any threshold cannot be converted the whole table is
// returned in USD.
func (s *CouponService) LocalizedCoupons(ctx context.Context, currency string) ([]models.LocalizedCoupon, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	currency = normalizeCurrency(currency)
	coupons, err := s.source.ListCoupons(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.LocalizedCoupon, 0, len(coupons))
	for _, c := range coupons {
		conv, err := s.converter.ConvertPrice(ctx, c.MinSubtotal, couponCurrency, currency)
		if err != nil {
			s.logger.Warn("cannot localize coupon thresholds, showing USD",
				zap.String("currency", currency),
				zap.Error(err))
			return usdCoupons(coupons), nil
		}
		out = append(out, models.LocalizedCoupon{
			Coupon:               c,
			LocalizedMinSubtotal: RoundForCurrency(conv.ConvertedAmount, currency).InexactFloat64(),
			Currency:             currency,
		})
	}
	return out, nil
}

// ValidateCoupon checks a single code against a subtotal.
func (s *CouponService) ValidateCoupon(ctx context.Context, code string, subtotal float64, currency string) (models.ValidationResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	if !finite(subtotal) {
		return models.ValidationResponse{IsValid: false, Message: "invalid_subtotal"}, models.ErrInvalidAmount
	}
	currency = normalizeCurrency(currency)

	c, err := s.source.GetCoupon(ctx, code)
	if err != nil {
		return models.ValidationResponse{IsValid: false, Message: "internal_error"}, err
	}
	if c == nil {
		return models.ValidationResponse{IsValid: false, Message: "coupon_not_found"}, nil
	}

	usdSubtotal, ok := s.toCouponCurrency(ctx, subtotal, currency)
	if !ok {
		return models.ValidationResponse{IsValid: false, Message: "conversion_unavailable"}, nil
	}
	if usdSubtotal.LessThan(threshold(*c)) {
		return models.ValidationResponse{IsValid: false, Message: "min_subtotal_not_met"}, nil
	}

	discount, err := s.discountFor(ctx, *c, subtotal, currency)
	if errors.Is(err, models.ErrUnsupportedDiscount) {
		return models.ValidationResponse{IsValid: false, Message: "unsupported_discount_type"}, nil
	}
	if err != nil {
		return models.ValidationResponse{IsValid: false, Message: "conversion_unavailable"}, nil
	}

	return models.ValidationResponse{
		IsValid:  true,
		Discount: discount,
		Message:  "coupon_applied",
	}, nil
}

func (s *CouponService) toCouponCurrency(ctx context.Context, subtotal float64, currency string) (decimal.Decimal, bool) {
	conv, err := s.converter.ConvertPrice(ctx, subtotal, currency, couponCurrency)
	if err != nil {
		s.logger.Warn("subtotal conversion failed, skipping coupon eligibility",
			zap.String("currency", currency),
			zap.Error(err))
		return decimal.Zero, false
	}
	return couponAmount(conv.ConvertedAmount), true
}

// couponAmount truncates a converted subtotal to whole cents, so an amount
// just under a threshold never rounds up into it. The Round(6) first absorbs
// float noise from the rate division (99.99999999999999 is 100).
func couponAmount(usd float64) decimal.Decimal {
	return decimal.NewFromFloat(usd).Round(6).RoundFloor(2)
}

// discountFor computes the discount in the subtotal's currency, capped at the
// subtotal.
func (s *CouponService) discountFor(ctx context.Context, c models.Coupon, subtotal float64, currency string) (float64, error) {
	var amount decimal.Decimal
	switch c.DiscountType {
	case models.DiscountPercentage:
		amount = decimal.NewFromFloat(subtotal).
			Mul(decimal.NewFromFloat(c.DiscountValue)).
			Div(decimal.NewFromInt(100))
	case models.DiscountFixedAmount:
		conv, err := s.converter.ConvertPrice(ctx, c.DiscountValue, couponCurrency, currency)
		if err != nil {
			return 0, err
		}
		amount = decimal.NewFromFloat(conv.ConvertedAmount)
	default:
		return 0, fmt.Errorf("%w: %q on %s", models.ErrUnsupportedDiscount, c.DiscountType, c.Code)
	}

	if ceiling := decimal.NewFromFloat(subtotal); amount.GreaterThan(ceiling) {
		amount = ceiling
	}
	return RoundForCurrency(amount.InexactFloat64(), currency).InexactFloat64(), nil
}

// selectCoupon returns the coupon with the highest threshold not above
// subtotal. Of equal thresholds the later one wins.
func selectCoupon(coupons []models.Coupon, subtotal decimal.Decimal) *models.Coupon {
	var best *models.Coupon
	for i := range coupons {
		t := threshold(coupons[i])
		if t.GreaterThan(subtotal) {
			continue
		}
		if best == nil || !t.LessThan(threshold(*best)) {
			c := coupons[i]
			best = &c
		}
	}
	return best
}

func threshold(c models.Coupon) decimal.Decimal {
	return decimal.NewFromFloat(c.MinSubtotal).Round(2)
}

func usdCoupons(coupons []models.Coupon) []models.LocalizedCoupon {
	out := make([]models.LocalizedCoupon, 0, len(coupons))
	for _, c := range coupons {
		out = append(out, models.LocalizedCoupon{
			Coupon:               c,
			LocalizedMinSubtotal: c.MinSubtotal,
			Currency:             couponCurrency,
		})
	}
	return out
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func normalizeCurrency(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return DefaultCurrency
	}
	return code
}
