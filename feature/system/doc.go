// Package system provides the service-level endpoints: the health check,
// the root greeting, the embedded favicon and the HTML 404 fallback page.
package system
