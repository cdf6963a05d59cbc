// Package middleware holds the Echo middleware: request ids, the
// request-scoped logger, New Relic tracing, Clerk authentication for write
// routes, rate limiting and the global error handler.
package middleware
