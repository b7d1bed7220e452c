package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pokedex_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pokedex_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	cacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pokedex_cache_lookups_total",
			Help: "Catalog cache lookups by cache name and result.",
		},
		[]string{"cache", "result"},
	)

	catalogRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pokedex_catalog_requests_total",
			Help: "Remote catalog requests by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	favoriteOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pokedex_favorite_operations_total",
			Help: "Favorites store operations by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	battlesFinishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pokedex_battles_finished_total",
			Help: "Finished battles by outcome.",
		},
		[]string{"outcome"},
	)

	wsConnectedTrainers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pokedex_ws_connected_trainers",
			Help: "Trainers with an open battle websocket.",
		},
	)

	battleDamage = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pokedex_battle_damage",
			Help:    "Damage dealt per hit.",
			Buckets: []float64{5, 10, 20, 40, 80, 160, 320},
		},
		[]string{"side"},
	)
)

// PrometheusMiddleware records request count and latency per route.
func PrometheusMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Path() == "/metrics" {
				return next(c)
			}

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			status := strconv.Itoa(c.Response().Status)

			httpRequestsTotal.WithLabelValues(c.Request().Method, path, status).Inc()
			httpRequestDuration.WithLabelValues(c.Request().Method, path).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}

func CacheHit(cache string) {
	cacheLookupsTotal.WithLabelValues(cache, "hit").Inc()
}

func CacheMiss(cache string) {
	cacheLookupsTotal.WithLabelValues(cache, "miss").Inc()
}

func CatalogRequest(operation string, err error) {
	catalogRequestsTotal.WithLabelValues(operation, outcome(err)).Inc()
}

func FavoriteOperation(operation string, err error) {
	favoriteOperationsTotal.WithLabelValues(operation, outcome(err)).Inc()
}

func BattleFinished(outcome string) {
	battlesFinishedTotal.WithLabelValues(outcome).Inc()
}

func BattleHit(side string, damage int) {
	battleDamage.WithLabelValues(side).Observe(float64(damage))
}

func ConnectedTrainers(n int) {
	wsConnectedTrainers.Set(float64(n))
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
