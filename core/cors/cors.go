package cors

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	fibercors "github.com/gofiber/fiber/v2/middleware/cors"
)

// New builds the CORS middleware from the configuration.
//
// The credential checks are repeated here even though Validate covers them:
// New can be called with a hand-built Config, and a credentialed wildcard
// policy must never reach the wire.
func New(cfg *Config) (fiber.Handler, error) {
	if cfg.AllowCredentials && contains(cfg.AllowMethods, "*") {
		return nil, fmt.Errorf("Cannot combine `Access-Control-Allow-Credentials: true` with `Access-Control-Allow-Methods: *`")
	}
	if cfg.AllowCredentials && contains(cfg.AllowOrigins, "*") {
		return nil, fmt.Errorf("Cannot combine `Access-Control-Allow-Credentials: true` with a wildcard origin")
	}

	return fibercors.New(fibercors.Config{
		AllowOrigins:     strings.Join(cfg.AllowOrigins, ","),
		AllowMethods:     strings.Join(cfg.AllowMethods, ","),
		AllowHeaders:     strings.Join(cfg.AllowHeaders, ","),
		AllowCredentials: cfg.AllowCredentials,
		ExposeHeaders:    strings.Join(cfg.ExposeHeaders, ","),
		MaxAge:           cfg.MaxAge,
	}), nil
}
