package models

// Eligibility is the evaluator's answer for one cart subtotal.
type Eligibility struct {
	Coupon           *Coupon `json:"coupon"`
	Subtotal         float64 `json:"subtotal"`
	Currency         string  `json:"currency"`
	SubtotalUSD      float64 `json:"subtotalUSD"`
	Discount         float64 `json:"discount"`
	ConversionFailed bool    `json:"conversionFailed,omitempty"`
}

type ValidationResponse struct {
	IsValid  bool    `json:"is_valid"`
	Discount float64 `json:"discount,omitempty"`
	Message  string  `json:"message"`
}
