package models

import "time"

type CurrencyInfo struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// ConvertedPrice is derived on demand and never persisted.
type ConvertedPrice struct {
	ConvertedAmount float64 `json:"convertedAmount"`
	Rate            float64 `json:"rate"`
}

// RateEntry is one cached rate table keyed by its base currency.
type RateEntry struct {
	BaseCurrency string             `json:"baseCurrency"`
	Rates        map[string]float64 `json:"rates"`
	FetchedAt    time.Time          `json:"fetchedAt"`
}

// Fresh reports whether the entry is still within ttl at now.
func (e RateEntry) Fresh(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.FetchedAt) < ttl
}
