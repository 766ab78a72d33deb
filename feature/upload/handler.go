package upload

import (
	"dropbuddy/core/apperror"
	"dropbuddy/core/logger"
	"dropbuddy/core/response"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for file uploads.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the upload routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/v1")
	group.Post("/upload", h.HandleUpload)
}

// HandleUpload stores a multipart file in object storage.
// @Summary Upload file
// @Description Stores the uploaded file and returns its object name.
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Success 200 {object} response.Response "Stored object"
// @Failure 413 {object} response.Response "File too large"
// @Failure 415 {object} response.Response "File type not allowed"
// @Router /v1/upload [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apperror.UploadMissingField("file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apperror.UploadFailed(err)
	}
	defer file.Close()

	l := logger.WithRequestID(h.service.logger, c)
	l.Info("upload request",
		zap.String("filename", fileHeader.Filename),
		zap.Int64("size", fileHeader.Size),
	)

	result, err := h.service.Store(
		c.Context(),
		fileHeader.Filename,
		fileHeader.Header.Get(fiber.HeaderContentType),
		fileHeader.Size,
		file,
	)
	if err != nil {
		return err
	}

	return response.JSON(c, result)
}
