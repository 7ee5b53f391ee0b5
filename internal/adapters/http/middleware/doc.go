// Package middleware holds the inbound HTTP pipeline. cmd/server installs it
// in this order:
//
//	Recovery → RequestID → CorrelationID → AppContext → OpenTelemetry → Logging → Timeout
//
// Authenticate and RequireRole are applied per route group by the router.
package middleware
