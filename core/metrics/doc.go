// Package metrics defines the Prometheus collectors of the service.
//
// Run-level counters are updated by the reconciliation service; the HTTP
// counter is updated by Middleware. Handler exposes everything on /metrics.
package metrics
