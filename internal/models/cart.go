package models

type CartItem struct {
	ID       string  `json:"id"`
	Category string  `json:"category,omitempty"`
	Price    float64 `json:"price"`
	Qty      int     `json:"qty"`
}

// Subtotal sums price*qty over the items.
func Subtotal(items []CartItem) float64 {
	total := 0.0
	for _, it := range items {
		total += it.Price * float64(it.Qty)
	}
	return total
}

type CartRequest struct {
	CartItems  []CartItem `json:"cart_items"`
	Subtotal   *float64   `json:"subtotal,omitempty"`
	Currency   string     `json:"currency"`
	CouponCode string     `json:"coupon_code,omitempty"`
}
