// Package server holds the HTTP server configuration section.
//
// The section carries the bind address, port and per-request timeout used by
// the Fiber application built in cmd/start.go.
package server
