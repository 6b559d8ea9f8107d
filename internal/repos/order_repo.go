package repos

import (
	"database/sql"
	"time"

	"parana/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

// StatusPlaced is the only order status written in this scope.
const StatusPlaced = "Placed"

// HistoryRow is one line of a shopper's order history.
type HistoryRow struct {
	OrderID     string  `db:"order_id" json:"orderId"`
	OrderDate   string  `db:"order_date" json:"orderDate"`
	Description string  `db:"description" json:"product"`
	SellerName  string  `db:"seller_name" json:"seller"`
	Price       float64 `db:"price" json:"price"`
	Quantity    int     `db:"quantity" json:"qty"`
	Status      string  `db:"status" json:"status"`
}

// PlaceFromBasket converts a basket into an order inside one transaction:
// insert the order header, copy every basket line verbatim, delete the
// basket contents and the basket row itself. Any failure rolls the whole
// sequence back and the basket is untouched.
//
// The basket row delete doubles as the exclusivity check: if another
// checkout consumed the basket first, zero rows are affected and the
// transaction is abandoned with sql.ErrNoRows.
func (r *OrderRepo) PlaceFromBasket(shopperID, basketID string, items []domain.BasketItem, now time.Time) (string, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback() }()

	orderID := uuid.NewString()
	if _, err := tx.Exec(`
	  INSERT INTO shopper_orders(order_id, shopper_id, order_date, status)
	  VALUES(?,?,?,?)
	`, orderID, shopperID, now.UTC().Format(time.RFC3339), StatusPlaced); err != nil {
		return "", err
	}

	for _, it := range items {
		if _, err := tx.Exec(`
		  INSERT INTO ordered_products(order_id, product_id, seller_id, quantity, price, status)
		  VALUES(?,?,?,?,?,?)
		`, orderID, it.ProductID, it.SellerID, it.Quantity, it.Price, StatusPlaced); err != nil {
			return "", err
		}
	}

	if _, err := tx.Exec(`DELETE FROM basket_contents WHERE basket_id = ?`, basketID); err != nil {
		return "", err
	}
	res, err := tx.Exec(`DELETE FROM shopper_baskets WHERE basket_id = ?`, basketID)
	if err != nil {
		return "", err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return "", sql.ErrNoRows
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return orderID, nil
}

// History joins orders against the catalog for display, most recent first.
func (r *OrderRepo) History(shopperID string) ([]HistoryRow, error) {
	var out []HistoryRow
	err := r.db.Select(&out, `
	  SELECT o.order_id, o.order_date, p.description, s.name AS seller_name,
	         op.price, op.quantity, op.status
	  FROM shopper_orders o
	  JOIN ordered_products op ON op.order_id = o.order_id
	  JOIN products p ON p.product_id = op.product_id
	  JOIN sellers s ON s.seller_id = op.seller_id
	  WHERE o.shopper_id = ?
	  ORDER BY o.order_date DESC
	`, shopperID)
	return out, err
}
