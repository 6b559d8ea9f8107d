package services

import (
	"parana/internal/domain"
	"parana/internal/repos"
)

type CatalogService struct {
	Catalog *repos.CatalogRepo
}

func NewCatalogService(catalog *repos.CatalogRepo) *CatalogService {
	return &CatalogService{Catalog: catalog}
}

func (s *CatalogService) Categories() ([]domain.Category, error) {
	return s.Catalog.ListCategories()
}

func (s *CatalogService) Products(categoryID string) ([]domain.Product, error) {
	return s.Catalog.ListProducts(categoryID)
}

func (s *CatalogService) Offers(productID string) ([]domain.SellerOffer, error) {
	return s.Catalog.ListOffers(productID)
}
