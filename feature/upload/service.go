package upload

import (
	"context"
	"fmt"
	"io"
	"path"

	"dropbuddy/core/apperror"
	"dropbuddy/core/storage"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// allowedTypes is the content-type allow-list for uploads.
var allowedTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/gif":  true,
	"image/webp": true,
}

// Result describes a stored object.
type Result struct {
	Object      string `json:"object"`
	Bucket      string `json:"bucket"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

// Service stores uploaded files in the configured bucket.
type Service struct {
	client storage.Client
	cfg    storage.Config
	logger *zap.Logger
}

// NewService creates a new upload service.
func NewService(client storage.Client, cfg storage.Config, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// Store checks the size and content type limits and writes the file to
// object storage under a fresh UUID name, keeping the original extension.
func (s *Service) Store(ctx context.Context, filename, contentType string, size int64, reader io.Reader) (*Result, error) {
	if size > s.cfg.MaxUploadBytes() {
		return nil, apperror.UploadSizeExceeded(size, s.cfg.MaxUploadBytes())
	}
	if !allowedTypes[contentType] {
		return nil, apperror.UploadTypeNotAllowed(contentType)
	}

	object := fmt.Sprintf("%s%s", uuid.NewString(), path.Ext(filename))

	_, err := s.client.PutObject(ctx, s.cfg.Bucket, object, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, apperror.UploadFailed(err)
	}

	s.logger.Info("file uploaded",
		zap.String("object", object),
		zap.Int64("size", size),
	)

	return &Result{
		Object:      object,
		Bucket:      s.cfg.Bucket,
		Size:        size,
		ContentType: contentType,
	}, nil
}
