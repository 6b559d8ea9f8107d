package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"parana/internal/http/handlers"
	"parana/internal/metrics"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	db.SetMaxOpenConns(1)
	schema := `
	CREATE TABLE shoppers(shopper_id TEXT PRIMARY KEY, first_name TEXT, surname TEXT);
	CREATE TABLE categories(category_id TEXT PRIMARY KEY, description TEXT);
	CREATE TABLE products(product_id TEXT PRIMARY KEY, category_id TEXT, description TEXT);
	CREATE TABLE sellers(seller_id TEXT PRIMARY KEY, name TEXT);
	CREATE TABLE product_sellers(product_id TEXT, seller_id TEXT, price NUMERIC,
	  PRIMARY KEY(product_id, seller_id));
	CREATE TABLE shopper_baskets(basket_id TEXT PRIMARY KEY, shopper_id TEXT, created_at TEXT);
	CREATE TABLE basket_contents(basket_id TEXT, product_id TEXT, seller_id TEXT,
	  quantity INTEGER, price NUMERIC);
	CREATE TABLE shopper_orders(order_id TEXT PRIMARY KEY, shopper_id TEXT, order_date TEXT, status TEXT);
	CREATE TABLE ordered_products(order_id TEXT, product_id TEXT, seller_id TEXT,
	  quantity INTEGER, price NUMERIC, status TEXT);

	INSERT INTO shoppers(shopper_id,first_name,surname) VALUES ('s1','Sam','Onetti');
	INSERT INTO categories(category_id,description) VALUES ('cat-1','Things');
	INSERT INTO products(product_id,category_id,description) VALUES ('prod-a','cat-1','Product A');
	INSERT INTO sellers(seller_id,name) VALUES ('sel-x','Seller X');
	INSERT INTO product_sellers(product_id,seller_id,price) VALUES ('prod-a','sel-x',10.00);
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatal(err)
	}
	return db
}

func newApp(db *sqlx.DB) *fiber.App {
	app := fiber.New()
	app.Use(requestid.New())

	deps := handlers.NewDeps(db, metrics.New())
	shopper := app.Group("/", handlers.RequireShopper(deps.Shoppers))
	shopper.Get("/categories", deps.CatalogHandler.Categories)
	shopper.Get("/basket", deps.BasketHandler.View)
	shopper.Post("/basket/items", deps.BasketHandler.Add)
	shopper.Put("/basket/items/:productID", deps.BasketHandler.UpdateQuantity)
	shopper.Delete("/basket/items/:productID", deps.BasketHandler.Remove)
	shopper.Get("/checkout", deps.CheckoutHandler.Summary)
	shopper.Post("/checkout", deps.CheckoutHandler.Confirm)
	shopper.Get("/orders", deps.HistoryHandler.List)
	return app
}

func do(t *testing.T, app *fiber.App, method, path, shopper, body string) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if shopper != "" {
		req.Header.Set("X-Shopper-ID", shopper)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

// One test builds the app once: metrics registration is global.
func TestAPIFlow(t *testing.T) {
	app := newApp(memdb(t))

	// shopper gate
	if resp := do(t, app, "GET", "/basket", "", ""); resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("missing header: want 400, got %d", resp.StatusCode)
	}
	if resp := do(t, app, "GET", "/basket", "nobody", ""); resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("unknown shopper: want 404, got %d", resp.StatusCode)
	}

	// browse
	if resp := do(t, app, "GET", "/categories", "s1", ""); resp.StatusCode != fiber.StatusOK {
		t.Fatalf("categories: want 200, got %d", resp.StatusCode)
	}

	// invalid quantity rejected before any write
	if resp := do(t, app, "POST", "/basket/items", "s1", `{"productId":"prod-a","sellerId":"sel-x","qty":0}`); resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("qty 0: want 400, got %d", resp.StatusCode)
	}

	// empty basket cannot be checked out
	if resp := do(t, app, "POST", "/checkout", "s1", ""); resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("empty checkout: want 409, got %d", resp.StatusCode)
	}

	// add + view
	if resp := do(t, app, "POST", "/basket/items", "s1", `{"productId":"prod-a","sellerId":"sel-x","qty":2}`); resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("add: want 201, got %d", resp.StatusCode)
	}
	resp := do(t, app, "GET", "/basket", "s1", "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("view: want 200, got %d", resp.StatusCode)
	}
	var bv struct {
		Total float64 `json:"total"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&bv); err != nil {
		t.Fatal(err)
	}
	if bv.Total != 20.00 {
		t.Fatalf("want total 20.00, got %v", bv.Total)
	}

	// update/remove misses
	if resp := do(t, app, "PUT", "/basket/items/prod-a", "s1", `{"qty":0}`); resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("update qty 0: want 400, got %d", resp.StatusCode)
	}
	if resp := do(t, app, "PUT", "/basket/items/prod-z", "s1", `{"qty":3}`); resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("update missing: want 404, got %d", resp.StatusCode)
	}
	if resp := do(t, app, "DELETE", "/basket/items/prod-z", "s1", ""); resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("remove missing: want 404, got %d", resp.StatusCode)
	}

	// checkout
	if resp := do(t, app, "GET", "/checkout", "s1", ""); resp.StatusCode != fiber.StatusOK {
		t.Fatalf("summary: want 200, got %d", resp.StatusCode)
	}
	resp = do(t, app, "POST", "/checkout", "s1", "")
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("confirm: want 201, got %d", resp.StatusCode)
	}
	var placed struct {
		OrderID string  `json:"orderId"`
		Total   float64 `json:"total"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&placed); err != nil {
		t.Fatal(err)
	}
	if placed.OrderID == "" || placed.Total != 20.00 {
		t.Fatalf("bad confirm payload: %+v", placed)
	}

	// basket consumed: a second confirm is a conflict
	if resp := do(t, app, "POST", "/checkout", "s1", ""); resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("second confirm: want 409, got %d", resp.StatusCode)
	}

	// history shows the placed order
	resp = do(t, app, "GET", "/orders", "s1", "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("history: want 200, got %d", resp.StatusCode)
	}
	var hist struct {
		Orders []struct {
			OrderID string `json:"orderId"`
			Status  string `json:"status"`
		} `json:"orders"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&hist); err != nil {
		t.Fatal(err)
	}
	if len(hist.Orders) != 1 || hist.Orders[0].OrderID != placed.OrderID || hist.Orders[0].Status != "Placed" {
		t.Fatalf("bad history: %+v", hist.Orders)
	}
}
