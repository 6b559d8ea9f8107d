package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	ItemsAdded       prometheus.Counter
	OrdersPlaced     prometheus.Counter
	CheckoutFailures prometheus.Counter
}

func New() *Metrics {
	itemsAdded := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "parana",
		Name:      "basket_items_added_total",
		Help:      "Total number of items added to baskets.",
	})
	ordersPlaced := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "parana",
		Name:      "orders_placed_total",
		Help:      "Total number of orders placed at checkout.",
	})
	checkoutFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "parana",
		Name:      "checkout_failures_total",
		Help:      "Total number of checkout attempts that did not produce an order.",
	})

	prometheus.MustRegister(itemsAdded, ordersPlaced, checkoutFailures)
	return &Metrics{ItemsAdded: itemsAdded, OrdersPlaced: ordersPlaced, CheckoutFailures: checkoutFailures}
}

func Handler() http.Handler {
	return promhttp.Handler()
}
