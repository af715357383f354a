// Package middleware holds the Echo middleware shared by every route:
// request ids, request-scoped logging, CORS, rate limiting, Prometheus
// metrics, New Relic tracing, panic recovery and the global error handler.
package middleware
