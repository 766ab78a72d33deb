package system

import (
	"dropbuddy/core/logger"
	"dropbuddy/core/response"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the system endpoints: health check, root greeting and
// favicon.
type Handler struct {
	logger *zap.Logger
}

// NewHandler creates a new system handler.
func NewHandler(logg *zap.Logger) *Handler {
	return &Handler{logger: logg}
}

// RegisterRoutes registers the system routes at the application root.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/health", h.HandleHealth)
	app.Get("/", h.HandleRoot)
	app.Get("/favicon.ico", h.HandleFavicon)
}

// HandleHealth reports whether the server is running.
// @Summary Health check
// @Description Returns the server health status.
// @Tags system
// @Produce json
// @Success 200 {object} response.Response "Server is healthy"
// @Router /health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	logger.WithRequestID(h.logger, c).Info("health check")
	return response.JSON(c, fiber.Map{"status": "healthy"})
}

// HandleRoot returns a simple greeting, useful to verify the server responds.
// @Summary Hello World
// @Description Returns a greeting message.
// @Tags system
// @Produce json
// @Success 200 {object} response.Response "Greeting"
// @Router / [get]
func (h *Handler) HandleRoot(c *fiber.Ctx) error {
	return response.JSON(c, fiber.Map{"message": "Hello, World!"})
}

// HandleFavicon serves the embedded site icon.
func (h *Handler) HandleFavicon(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "image/x-icon")
	return c.Send(faviconBytes)
}
