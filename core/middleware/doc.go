// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the
// handler.
//
// # Components
//
//   - RequestID: Generates a unique request id for every incoming request,
//     injecting it into the request headers, response headers and context
//     locals for tracing.
//
// These middleware components are registered globally in the main
// application setup; CORS, compression and rate limiting come from Fiber's
// own middleware packages.
package middleware
