package api

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"path", "method", "status"},
	)
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)
	authRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_rejections_total",
			Help: "Total number of unauthorized requests",
		},
		[]string{"reason"},
	)
)

// InitPrometheus registers the metric vectors. Call once from main.
func InitPrometheus() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(authRejections)
}

// MonitorMiddleware records request counts and latency. The route
// pattern is used as the path label so parameterized routes do not
// explode cardinality.
func MonitorMiddleware(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	path := c.Route().Path
	status := c.Response().StatusCode()

	httpRequestsTotal.WithLabelValues(path, c.Method(), strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(path, c.Method()).Observe(time.Since(start).Seconds())

	if status == fiber.StatusUnauthorized {
		authRejections.WithLabelValues("401_unauthorized").Inc()
	} else if status == fiber.StatusForbidden {
		authRejections.WithLabelValues("403_forbidden").Inc()
	}

	return err
}

// MetricsHandler serves the Prometheus scrape endpoint behind basic
// auth. Empty credentials disable the endpoint rather than exposing it.
func MetricsHandler(metricsUser string, metricsPass string) fiber.Handler {
	scrape := adaptor.HTTPHandler(promhttp.Handler())
	return func(c *fiber.Ctx) error {
		if metricsUser == "" || metricsPass == "" {
			return c.SendStatus(fiber.StatusNotFound)
		}
		user, pass, ok := parseBasicAuth(c.Get(fiber.HeaderAuthorization))
		if !ok || user != metricsUser || pass != metricsPass {
			c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="Metrics"`)
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return scrape(c)
	}
}

func parseBasicAuth(header string) (string, string, bool) {
	const prefix = "Basic "
	if !strings.HasPrefix(header, prefix) {
		return "", "", false
	}
	decoded, err := base64.StdEncoding.DecodeString(header[len(prefix):])
	if err != nil {
		return "", "", false
	}
	user, pass, found := strings.Cut(string(decoded), ":")
	if !found {
		return "", "", false
	}
	return user, pass, true
}
