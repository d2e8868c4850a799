package monitoring

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by route and status",
		},
		[]string{"route", "status"},
	)

	eventLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "event_lookups_total",
			Help: "Single-event lookups by outcome (hit, miss, error)",
		},
		[]string{"outcome"},
	)
)

// RecordEventLookup counts one detail lookup outcome.
func RecordEventLookup(outcome string) {
	eventLookups.WithLabelValues(outcome).Inc()
}

// RequestCounter is echo middleware counting requests per route and status.
func RequestCounter() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				} else {
					status = 500
				}
			}
			httpRequests.WithLabelValues(c.Path(), strconv.Itoa(status)).Inc()

			return err
		}
	}
}

// Handler serves the prometheus scrape endpoint.
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
