// Package response provides the uniform JSON envelope every API endpoint
// returns: {code, msg, data, timestamp}.
package response
