package models

import "errors"

var (
	ErrConversionUnavailable = errors.New("no conversion available")
	ErrUnsupportedCurrency   = errors.New("unsupported currency")
	ErrInvalidCountry        = errors.New("invalid country code")
	ErrUnknownSession        = errors.New("unknown session")
	ErrInvalidAmount         = errors.New("amount must be a finite number")
	ErrUnsupportedDiscount   = errors.New("unsupported discount type")
)
