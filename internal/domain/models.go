package domain

type Shopper struct {
	ID        string `db:"shopper_id"`
	FirstName string `db:"first_name"`
	Surname   string `db:"surname"`
}

func (s Shopper) FullName() string { return s.FirstName + " " + s.Surname }

type Category struct {
	ID          string `db:"category_id" json:"id"`
	Description string `db:"description" json:"description"`
}

type Product struct {
	ID          string `db:"product_id" json:"id"`
	CategoryID  string `db:"category_id" json:"categoryId"`
	Description string `db:"description" json:"description"`
}

// SellerOffer is one (seller, price) pair for a product.
type SellerOffer struct {
	SellerID string  `db:"seller_id" json:"sellerId"`
	Name     string  `db:"name" json:"name"`
	Price    float64 `db:"price" json:"price"`
}

// BasketItem is a raw basket line; price is frozen at add time and never
// re-read from the catalog.
type BasketItem struct {
	BasketID  string  `db:"basket_id"`
	ProductID string  `db:"product_id"`
	SellerID  string  `db:"seller_id"`
	Quantity  int     `db:"quantity"`
	Price     float64 `db:"price"`
}
