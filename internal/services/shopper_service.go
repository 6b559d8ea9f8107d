package services

import (
	"database/sql"

	"parana/internal/domain"
	"parana/internal/repos"
)

type ShopperService struct {
	Shoppers *repos.ShopperRepo
}

func NewShopperService(shoppers *repos.ShopperRepo) *ShopperService {
	return &ShopperService{Shoppers: shoppers}
}

// Lookup validates the shopper id and returns the shopper for display.
func (s *ShopperService) Lookup(id string) (domain.Shopper, error) {
	sh, err := s.Shoppers.ByID(id)
	if err == sql.ErrNoRows {
		return domain.Shopper{}, ErrUnknownShopper
	}
	return sh, err
}
