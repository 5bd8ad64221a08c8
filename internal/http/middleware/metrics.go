package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by endpoint, method and status",
		},
		[]string{"endpoint", "method", "status"},
	)
	AuthFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "auth_failures_total",
			Help: "Total requests rejected for a missing or invalid session",
		},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequests)
	prometheus.MustRegister(AuthFailures)
}

// HTTPMetrics counts every handled request.
func HTTPMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		HTTPRequests.WithLabelValues(c.FullPath(), c.Request.Method, strconv.Itoa(status)).Inc()
		if status == 401 {
			AuthFailures.Inc()
		}
	}
}
