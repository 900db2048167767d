package models

type ShippingRate struct {
	CountryCode     string  `json:"countryCode"`
	ShippingCost    float64 `json:"shippingCost"`
	MinDeliveryDays int     `json:"minDeliveryDays"`
	MaxDeliveryDays int     `json:"maxDeliveryDays"`
	IsDefault       bool    `json:"isDefault"`
}
