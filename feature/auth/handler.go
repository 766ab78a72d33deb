package auth

import (
	"dropbuddy/core/apperror"
	"dropbuddy/core/logger"
	"dropbuddy/core/response"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for authentication.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the auth routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/v1/auth")
	group.Post("/register", h.HandleRegister)
}

// HandleRegister creates a new user account.
// @Summary Register user
// @Description Creates a new user and returns it together with a signed token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body auth.RegisterRequest true "Registration request"
// @Success 200 {object} response.Response "Registered user and token"
// @Failure 400 {object} response.Response "Validation error"
// @Router /v1/auth/register [post]
func (h *Handler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.Validation("invalid request body")
	}

	l := logger.WithRequestID(h.service.logger, c)
	l.Info("register user request", zap.String("email", req.Email))

	result, err := h.service.RegisterUser(c.Context(), req)
	if err != nil {
		return err
	}

	return response.JSON(c, result)
}
