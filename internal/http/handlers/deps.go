package handlers

import (
	"parana/internal/metrics"
	"parana/internal/repos"
	"parana/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	CatalogHandler  *CatalogHandler
	BasketHandler   *BasketHandler
	CheckoutHandler *CheckoutHandler
	HistoryHandler  *HistoryHandler
	Shoppers        *services.ShopperService
}

func NewDeps(db *sqlx.DB, m *metrics.Metrics) *Deps {
	shopperRepo := repos.NewShopperRepo(db)
	catalogRepo := repos.NewCatalogRepo(db)
	basketRepo := repos.NewBasketRepo(db)
	orderRepo := repos.NewOrderRepo(db)

	locks := services.NewShopperLocks()

	shopperSvc := services.NewShopperService(shopperRepo)
	catalogSvc := services.NewCatalogService(catalogRepo)
	basketSvc := services.NewBasketService(basketRepo, catalogRepo, locks)
	checkoutSvc := services.NewCheckoutService(basketRepo, orderRepo, locks)
	historySvc := services.NewHistoryService(orderRepo)

	return &Deps{
		CatalogHandler:  &CatalogHandler{Catalog: catalogSvc},
		BasketHandler:   &BasketHandler{Basket: basketSvc, Metrics: m},
		CheckoutHandler: &CheckoutHandler{Checkout: checkoutSvc, Metrics: m},
		HistoryHandler:  &HistoryHandler{History: historySvc},
		Shoppers:        shopperSvc,
	}
}
