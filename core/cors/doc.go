// Package cors holds the cross-origin resource sharing configuration section
// and builds the Fiber CORS middleware from it.
//
// The section carries origin, method and header allow-lists, the credential
// flag, exposed headers and the preflight cache duration. Validation rejects
// empty allow-lists and the credentialed-wildcard-method combination that
// browsers refuse.
package cors
