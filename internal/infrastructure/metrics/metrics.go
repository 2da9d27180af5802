package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "repairhub_orders_created_total",
		Help: "Total number of orders successfully created.",
	})

	OrderStatusChangesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "repairhub_order_status_changes_total",
		Help: "Total number of audited order status transitions.",
	},
		[]string{"status"},
	)

	BookingsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "repairhub_bookings_created_total",
		Help: "Total number of repair bookings successfully created.",
	})

	QuotesProposedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "repairhub_quotes_proposed_total",
		Help: "Total number of quotes proposed by staff.",
	})

	QuotesResolvedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "repairhub_quotes_resolved_total",
		Help: "Total number of quotes accepted or declined by customers.",
	},
		[]string{"outcome"},
	)

	VouchersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "repairhub_vouchers_created_total",
		Help: "Total number of vouchers created.",
	})

	VouchersRedeemedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "repairhub_vouchers_redeemed_total",
		Help: "Total number of vouchers successfully redeemed.",
	})
)
