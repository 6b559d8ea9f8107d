package services

import "errors"

var (
	// ErrUnknownShopper ends the caller's session; every other error is reported
	// and the session continues.
	ErrUnknownShopper  = errors.New("shopper not found")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrItemNotFound    = errors.New("item not in basket")
	ErrEmptyBasket     = errors.New("basket is empty")
	// ErrCheckoutFailed wraps the storage cause of a rolled-back checkout.
	ErrCheckoutFailed = errors.New("checkout failed")
)
