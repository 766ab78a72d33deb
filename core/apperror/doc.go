// Package apperror defines the application error taxonomy and the top-level
// Fiber error handler.
//
// Errors fall into two families. Configuration errors (MissingVarError,
// InvalidConfigError) are fatal at process startup and never reach a client.
// Request-time errors carry a business code and an HTTP status and are
// converted into the response envelope at the HTTP boundary:
//
//	10100-10199  database
//	10200-10299  configuration
//	10300-10399  IO / serialization / other system errors
//	11000-11099  user input validation
//	11100-11199  file upload
package apperror
