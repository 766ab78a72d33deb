// Package logger provides the logging configuration section and zap logger
// construction.
//
// Three output formats are supported: pretty (colored console), compact
// (single-line console) and json. The WithRequestID helper attaches the
// request id injected by the requestid middleware to a logger for
// per-request log correlation.
package logger
