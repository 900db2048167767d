package models

const (
	DiscountPercentage  = "percentage"
	DiscountFixedAmount = "fixed_amount"
)

// Coupon is a subtotal-threshold coupon. MinSubtotal and fixed discounts are in USD.
type Coupon struct {
	ID            int     `json:"-"`
	Code          string  `json:"code"`
	MinSubtotal   float64 `json:"minSubtotal"`
	Description   string  `json:"description"`
	DiscountType  string  `json:"discountType"`
	DiscountValue float64 `json:"discountValue"`
}

// LocalizedCoupon is a display copy of a Coupon with its threshold in another currency.
type LocalizedCoupon struct {
	Coupon
	LocalizedMinSubtotal float64 `json:"localizedMinSubtotal"`
	Currency             string  `json:"currency"`
}
