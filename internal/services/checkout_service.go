package services

import (
	"database/sql"
	"fmt"
	"time"

	"parana/internal/repos"
)

type CheckoutService struct {
	Baskets *repos.BasketRepo
	Orders  *repos.OrderRepo
	Locks   *ShopperLocks
}

func NewCheckoutService(baskets *repos.BasketRepo, orders *repos.OrderRepo, locks *ShopperLocks) *CheckoutService {
	return &CheckoutService{Baskets: baskets, Orders: orders, Locks: locks}
}

// Summary returns the frozen lines and total the shopper is asked to
// confirm. No writes. ErrEmptyBasket when there is nothing to check out.
func (s *CheckoutService) Summary(shopperID string) (BasketView, error) {
	basketID, err := s.Baskets.Active(shopperID, time.Now())
	if err == sql.ErrNoRows {
		return BasketView{}, ErrEmptyBasket
	}
	if err != nil {
		return BasketView{}, err
	}
	items, total, err := s.Baskets.View(basketID)
	if err != nil {
		return BasketView{}, err
	}
	if len(items) == 0 {
		return BasketView{}, ErrEmptyBasket
	}
	return BasketView{Items: items, Total: total}, nil
}

// Confirm performs the atomic basket-to-order transition and returns the
// new order id with the frozen total. Quantities and prices come from the
// basket lines only; the catalog is never consulted.
//
// Under the shopper's lock a racing second Confirm re-resolves after the
// winner commits and reports ErrEmptyBasket.
func (s *CheckoutService) Confirm(shopperID string) (string, float64, error) {
	release := s.Locks.Acquire(shopperID)
	defer release()

	basketID, err := s.Baskets.Active(shopperID, time.Now())
	if err == sql.ErrNoRows {
		return "", 0, ErrEmptyBasket
	}
	if err != nil {
		return "", 0, err
	}

	items, err := s.Baskets.Items(basketID)
	if err != nil {
		return "", 0, err
	}
	if len(items) == 0 {
		return "", 0, ErrEmptyBasket
	}

	total := 0.0
	for _, it := range items {
		total += float64(it.Quantity) * it.Price
	}

	orderID, err := s.Orders.PlaceFromBasket(shopperID, basketID, items, time.Now())
	if err == sql.ErrNoRows {
		// basket consumed between resolve and commit
		return "", 0, ErrEmptyBasket
	}
	if err != nil {
		return "", 0, fmt.Errorf("%w: %w", ErrCheckoutFailed, err)
	}
	return orderID, total, nil
}
