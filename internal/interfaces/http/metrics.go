package httpinterface

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	priceRequestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "oraclefeed_price_requests_total",
		Help: "Total number of price load requests.",
	})
	priceErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "oraclefeed_price_errors_total",
		Help: "Total number of failed price load requests.",
	})
)
