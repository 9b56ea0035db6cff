package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)

// Metrics はリクエストの所要時間と件数を記録する。
// pathラベルはルートのテンプレート（/api/Products/:id）でカーディナリティを抑える。
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			method := c.Request().Method
			path := c.Path()
			status := strconv.Itoa(c.Response().Status)

			httpRequestDuration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
			httpRequestsTotal.WithLabelValues(method, path, status).Inc()
			return nil
		}
	}
}
