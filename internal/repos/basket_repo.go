package repos

import (
	"database/sql"
	"time"

	"parana/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type BasketRepo struct{ db *sqlx.DB }

func NewBasketRepo(db *sqlx.DB) *BasketRepo { return &BasketRepo{db: db} }

// BasketLineRow is a display row joined against the catalog.
type BasketLineRow struct {
	ProductID   string  `db:"product_id" json:"productId"`
	Description string  `db:"description" json:"description"`
	SellerID    string  `db:"seller_id" json:"sellerId"`
	SellerName  string  `db:"seller_name" json:"sellerName"`
	Quantity    int     `db:"quantity" json:"qty"`
	Price       float64 `db:"price" json:"price"`
	Subtotal    float64 `db:"subtotal" json:"subtotal"`
}

const dayLayout = "2006-01-02"

// Active returns the basket created on day's calendar date, sql.ErrNoRows when absent.
func (r *BasketRepo) Active(shopperID string, day time.Time) (string, error) {
	var basketID string
	err := r.db.Get(&basketID, `
	  SELECT basket_id FROM shopper_baskets
	  WHERE shopper_id = ? AND DATE(created_at) = ?
	  ORDER BY created_at DESC LIMIT 1
	`, shopperID, day.UTC().Format(dayLayout))
	return basketID, err
}

func (r *BasketRepo) Create(shopperID string, now time.Time) (string, error) {
	basketID := uuid.NewString()
	_, err := r.db.Exec(`INSERT INTO shopper_baskets(basket_id, shopper_id, created_at) VALUES(?,?,?)`,
		basketID, shopperID, now.UTC().Format(time.RFC3339))
	if err != nil {
		return "", err
	}
	return basketID, nil
}

// AddItem resolves or creates the shopper's basket for now's calendar day
// and appends the line, all inside one transaction; a failure on either
// statement rolls both back. The new row is always independent, even for a
// (product, seller) pair already in the basket.
func (r *BasketRepo) AddItem(shopperID string, now time.Time, productID, sellerID string, qty int, price float64) (string, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback() }()

	var basketID string
	err = tx.Get(&basketID, `
	  SELECT basket_id FROM shopper_baskets
	  WHERE shopper_id = ? AND DATE(created_at) = ?
	  ORDER BY created_at DESC LIMIT 1
	`, shopperID, now.UTC().Format(dayLayout))
	if err == sql.ErrNoRows {
		basketID = uuid.NewString()
		if _, err := tx.Exec(`INSERT INTO shopper_baskets(basket_id, shopper_id, created_at) VALUES(?,?,?)`,
			basketID, shopperID, now.UTC().Format(time.RFC3339)); err != nil {
			return "", err
		}
	} else if err != nil {
		return "", err
	}

	if _, err := tx.Exec(`
	  INSERT INTO basket_contents(basket_id, product_id, seller_id, quantity, price)
	  VALUES(?,?,?,?,?)
	`, basketID, productID, sellerID, qty, price); err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return basketID, nil
}

// InsertItem appends a line to an existing basket outside any basket
// resolution; duplicate (product, seller) lines stay independent here too.
func (r *BasketRepo) InsertItem(basketID, productID, sellerID string, qty int, price float64) error {
	_, err := r.db.Exec(`
	  INSERT INTO basket_contents(basket_id, product_id, seller_id, quantity, price)
	  VALUES(?,?,?,?,?)
	`, basketID, productID, sellerID, qty, price)
	return err
}

// UpdateQuantity returns the number of affected rows; 0 means the product
// is not in the basket.
func (r *BasketRepo) UpdateQuantity(basketID, productID string, qty int) (int64, error) {
	res, err := r.db.Exec(`
	  UPDATE basket_contents SET quantity = ?
	  WHERE basket_id = ? AND product_id = ?
	`, qty, basketID, productID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *BasketRepo) DeleteItem(basketID, productID string) (int64, error) {
	res, err := r.db.Exec(`
	  DELETE FROM basket_contents
	  WHERE basket_id = ? AND product_id = ?
	`, basketID, productID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Items returns raw basket lines for checkout; row order is unspecified.
func (r *BasketRepo) Items(basketID string) ([]domain.BasketItem, error) {
	var out []domain.BasketItem
	err := r.db.Select(&out, `
	  SELECT basket_id, product_id, seller_id, quantity, price
	  FROM basket_contents
	  WHERE basket_id = ?
	`, basketID)
	return out, err
}

func (r *BasketRepo) View(basketID string) ([]BasketLineRow, float64, error) {
	rows := []BasketLineRow{}
	if err := r.db.Select(&rows, `
	  SELECT bc.product_id, p.description, bc.seller_id, s.name AS seller_name,
	         bc.quantity, bc.price, (bc.quantity*bc.price) AS subtotal
	  FROM basket_contents bc
	  JOIN products p ON p.product_id = bc.product_id
	  JOIN sellers s ON s.seller_id = bc.seller_id
	  WHERE bc.basket_id = ?
	`, basketID); err != nil {
		return nil, 0, err
	}
	total := 0.0
	for _, it := range rows {
		total += it.Subtotal
	}
	return rows, total, nil
}
