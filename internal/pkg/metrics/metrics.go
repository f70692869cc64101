package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FlightsStartedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_console_flights_started_total",
		Help: "Total number of status change and driver assignment requests sent to the backend.",
	},
		[]string{"action"},
	)

	FlightsSettledTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_console_flights_settled_total",
		Help: "Total number of backend requests settled, by action and outcome.",
	},
		[]string{"action", "outcome"},
	)

	BackendErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_console_backend_errors_total",
		Help: "Total number of failed backend calls.",
	},
		[]string{"operation"},
	)

	StoreOrders = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "dispatch_console_store_orders",
		Help: "Current number of orders held in the session store.",
	})

	JournalWriteErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dispatch_console_journal_write_errors_total",
		Help: "Total number of journal entries that could not be persisted.",
	})
)
