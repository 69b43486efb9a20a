// Package requestid attaches a correlation identifier to every HTTP request.
//
// The middleware reuses a valid client-supplied "X-Request-ID" header or
// generates a fresh UUIDv4, stores the value in the request context, and
// echoes it back in the response header. The LoggerExtractor integrates with
// the logger package so the ID lands on every log record of the request.
//
//	mux := chi.NewRouter()
//	mux.Use(requestid.Middleware)
//
// Invalid or oversized client IDs are silently replaced; the package never
// returns errors.
package requestid
