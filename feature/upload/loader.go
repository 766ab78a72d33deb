package upload

import (
	"dropbuddy/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the upload feature.
func NewFeature(client storage.Client, cfg storage.Config, logger *zap.Logger) *Feature {
	svc := NewService(client, cfg, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "upload"
}

// IsEnabled checks if the feature is enabled. Upload needs a storage client.
func (f *Feature) IsEnabled() bool {
	return f.service.client != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
