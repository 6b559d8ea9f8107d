package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed baseline data if DB is empty (shoppers/catalog/offers)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Shoppers (externally managed identities)
CREATE TABLE IF NOT EXISTS shoppers(
  shopper_id TEXT PRIMARY KEY,
  first_name TEXT NOT NULL,
  surname    TEXT NOT NULL
);

-- Catalog
CREATE TABLE IF NOT EXISTS categories(
  category_id TEXT PRIMARY KEY,
  description TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS products(
  product_id  TEXT NOT NULL PRIMARY KEY,
  category_id TEXT NOT NULL REFERENCES categories(category_id) ON DELETE RESTRICT,
  description TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id);

CREATE TABLE IF NOT EXISTS sellers(
  seller_id TEXT PRIMARY KEY,
  name      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS product_sellers(
  product_id TEXT NOT NULL REFERENCES products(product_id) ON DELETE CASCADE,
  seller_id  TEXT NOT NULL REFERENCES sellers(seller_id) ON DELETE CASCADE,
  price NUMERIC NOT NULL CHECK (price >= 0),
  PRIMARY KEY (product_id, seller_id)
);

-- Baskets: at most one active basket per shopper per calendar day,
-- resolved by DATE(created_at)
CREATE TABLE IF NOT EXISTS shopper_baskets(
  basket_id  TEXT PRIMARY KEY,
  shopper_id TEXT NOT NULL REFERENCES shoppers(shopper_id) ON DELETE CASCADE,
  created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_baskets_shopper ON shopper_baskets(shopper_id, created_at);

-- Duplicate (product, seller) lines are independent rows: no uniqueness here
CREATE TABLE IF NOT EXISTS basket_contents(
  basket_id  TEXT NOT NULL REFERENCES shopper_baskets(basket_id) ON DELETE CASCADE,
  product_id TEXT NOT NULL REFERENCES products(product_id) ON DELETE RESTRICT,
  seller_id  TEXT NOT NULL REFERENCES sellers(seller_id) ON DELETE RESTRICT,
  quantity INTEGER NOT NULL CHECK (quantity >= 1),
  price NUMERIC NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_basket_contents_basket ON basket_contents(basket_id);

-- Orders
CREATE TABLE IF NOT EXISTS shopper_orders(
  order_id   TEXT PRIMARY KEY,
  shopper_id TEXT NOT NULL REFERENCES shoppers(shopper_id),
  order_date TEXT NOT NULL,
  status     TEXT NOT NULL DEFAULT 'Placed'
);
CREATE INDEX IF NOT EXISTS idx_orders_shopper ON shopper_orders(shopper_id, order_date);

CREATE TABLE IF NOT EXISTS ordered_products(
  order_id   TEXT NOT NULL REFERENCES shopper_orders(order_id) ON DELETE CASCADE,
  product_id TEXT NOT NULL REFERENCES products(product_id),
  seller_id  TEXT NOT NULL REFERENCES sellers(seller_id),
  quantity INTEGER NOT NULL CHECK (quantity >= 1),
  price NUMERIC NOT NULL,
  status TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_ordered_products_order ON ordered_products(order_id);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM categories`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo shoppers/catalog/offers")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO shoppers(shopper_id,first_name,surname) VALUES
	  ('sh-1001','Ana','Martinez'),
	  ('sh-1002','Bruno','Costa'),
	  ('sh-1003','Carla','Silva')`)

	tx.MustExec(`INSERT INTO categories(category_id,description) VALUES
	  ('books','Books'),
	  ('electronics','Electronics'),
	  ('home-garden','Home & Garden')`)

	tx.MustExec(`INSERT INTO products(product_id,category_id,description) VALUES
	  ('bk-atlas','books','World Atlas 2024 Edition'),
	  ('bk-cook','books','River Plate Cookbook'),
	  ('el-kettle','electronics','Cordless Kettle 1.7L'),
	  ('el-lamp','electronics','LED Desk Lamp'),
	  ('hg-shears','home-garden','Garden Shears')`)

	tx.MustExec(`INSERT INTO sellers(seller_id,name) VALUES
	  ('sel-bluesky','BlueSky Trading'),
	  ('sel-riverside','Riverside Retail'),
	  ('sel-guarani','Guarani Goods')`)

	tx.MustExec(`INSERT INTO product_sellers(product_id,seller_id,price) VALUES
	  ('bk-atlas','sel-bluesky',34.99),
	  ('bk-atlas','sel-riverside',32.50),
	  ('bk-cook','sel-guarani',18.00),
	  ('el-kettle','sel-bluesky',45.00),
	  ('el-kettle','sel-guarani',42.75),
	  ('el-lamp','sel-riverside',27.30),
	  ('hg-shears','sel-guarani',15.20),
	  ('hg-shears','sel-riverside',14.95)`)

	return tx.Commit()
}
