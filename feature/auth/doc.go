// Package auth implements user registration.
//
// POST /v1/auth/register validates the request, stores the user with a
// bcrypt password hash through the shared connection pool and returns the
// public record together with an HS256 token signed with the configured
// secret.
package auth
