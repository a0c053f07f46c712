// Package sirirelay is the long-running HTTP receiver of the relay.
//
// Producers push SIRI notifications to POST /siri/notifications; each request body
// goes through notification.Handler and the handler result is written back as JSON.
// The server also exposes /api/health and Prometheus metrics on /metrics.
package sirirelay
