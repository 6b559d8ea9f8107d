package repos

import (
	"parana/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CatalogRepo struct{ db *sqlx.DB }

func NewCatalogRepo(db *sqlx.DB) *CatalogRepo { return &CatalogRepo{db: db} }

func (r *CatalogRepo) ListCategories() ([]domain.Category, error) {
	var out []domain.Category
	err := r.db.Select(&out, `
	  SELECT category_id, description
	  FROM categories
	  ORDER BY description
	`)
	return out, err
}

func (r *CatalogRepo) ListProducts(categoryID string) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT product_id, category_id, description
	  FROM products
	  WHERE category_id = ?
	  ORDER BY description
	`, categoryID)
	return out, err
}

func (r *CatalogRepo) ListOffers(productID string) ([]domain.SellerOffer, error) {
	var out []domain.SellerOffer
	err := r.db.Select(&out, `
	  SELECT s.seller_id, s.name, ps.price
	  FROM product_sellers ps
	  JOIN sellers s ON s.seller_id = ps.seller_id
	  WHERE ps.product_id = ?
	  ORDER BY s.name
	`, productID)
	return out, err
}

// OfferPrice returns sql.ErrNoRows when the seller does not offer the product.
func (r *CatalogRepo) OfferPrice(productID, sellerID string) (float64, error) {
	var price float64
	err := r.db.Get(&price, `
	  SELECT price FROM product_sellers
	  WHERE product_id = ? AND seller_id = ?
	`, productID, sellerID)
	return price, err
}
