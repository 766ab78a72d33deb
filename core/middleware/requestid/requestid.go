package requestid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header is the header carrying the request id on both request and response.
const Header = "X-Request-ID"

// ContextKey is the Fiber locals key the id is stored under.
const ContextKey = "request_id"

// New returns a middleware that tags every request with a fresh UUIDv4.
// The id is written into the request headers (so downstream handlers and the
// 404 page can read it), the response headers, and the context locals for
// log correlation. No shared state is touched; the middleware is safe on any
// concurrency unit the server schedules it on.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := uuid.NewString()

		c.Request().Header.Set(Header, id)
		c.Locals(ContextKey, id)
		c.Set(Header, id)

		return c.Next()
	}
}

// FromCtx returns the request id for the current request, or "" if the
// middleware did not run.
func FromCtx(c *fiber.Ctx) string {
	if id, ok := c.Locals(ContextKey).(string); ok {
		return id
	}
	return ""
}
