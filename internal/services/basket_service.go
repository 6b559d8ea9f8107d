package services

import (
	"database/sql"
	"time"

	"parana/internal/repos"
)

type BasketService struct {
	Baskets *repos.BasketRepo
	Catalog *repos.CatalogRepo
	Locks   *ShopperLocks
}

func NewBasketService(baskets *repos.BasketRepo, catalog *repos.CatalogRepo, locks *ShopperLocks) *BasketService {
	return &BasketService{Baskets: baskets, Catalog: catalog, Locks: locks}
}

type BasketView struct {
	Items []repos.BasketLineRow
	Total float64
}

// Add freezes the seller's current price onto the new line. A (product,
// seller) pair already in the basket gets a second independent line.
// Basket resolution and the line insert commit or roll back together;
// repeated adds on the same day land in the same basket.
func (s *BasketService) Add(shopperID, productID, sellerID string, qty int) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}

	price, err := s.Catalog.OfferPrice(productID, sellerID)
	if err == sql.ErrNoRows {
		return ErrItemNotFound
	}
	if err != nil {
		return err
	}

	release := s.Locks.Acquire(shopperID)
	defer release()

	_, err = s.Baskets.AddItem(shopperID, time.Now(), productID, sellerID, qty, price)
	return err
}

// View returns an empty view when the shopper has no basket today.
func (s *BasketService) View(shopperID string) (BasketView, error) {
	basketID, err := s.Baskets.Active(shopperID, time.Now())
	if err == sql.ErrNoRows {
		return BasketView{Items: []repos.BasketLineRow{}}, nil
	}
	if err != nil {
		return BasketView{}, err
	}
	items, total, err := s.Baskets.View(basketID)
	if err != nil {
		return BasketView{}, err
	}
	return BasketView{Items: items, Total: total}, nil
}

func (s *BasketService) UpdateQuantity(shopperID, productID string, qty int) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}

	release := s.Locks.Acquire(shopperID)
	defer release()

	basketID, err := s.Baskets.Active(shopperID, time.Now())
	if err == sql.ErrNoRows {
		return ErrItemNotFound
	}
	if err != nil {
		return err
	}
	n, err := s.Baskets.UpdateQuantity(basketID, productID, qty)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (s *BasketService) Remove(shopperID, productID string) error {
	release := s.Locks.Acquire(shopperID)
	defer release()

	basketID, err := s.Baskets.Active(shopperID, time.Now())
	if err == sql.ErrNoRows {
		return ErrItemNotFound
	}
	if err != nil {
		return err
	}
	n, err := s.Baskets.DeleteItem(basketID, productID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrItemNotFound
	}
	return nil
}
