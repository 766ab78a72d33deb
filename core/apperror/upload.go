package apperror

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Upload error constructors, codes 11100-11199.

// UploadSizeExceeded reports a file larger than the configured cap.
func UploadSizeExceeded(size, limit int64) *Error {
	return &Error{
		Code:    CodeUpload + 1,
		Status:  fiber.StatusRequestEntityTooLarge,
		Message: fmt.Sprintf("File size exceeds the limit: %d bytes (max %d)", size, limit),
	}
}

// UploadTypeNotAllowed reports a content type outside the allow-list.
func UploadTypeNotAllowed(contentType string) *Error {
	return &Error{
		Code:    CodeUpload + 2,
		Status:  fiber.StatusUnsupportedMediaType,
		Message: fmt.Sprintf("File type not allowed: %s", contentType),
	}
}

// UploadMissingField reports a multipart form without the required field.
func UploadMissingField(field string) *Error {
	return &Error{
		Code:    CodeUpload + 3,
		Status:  fiber.StatusBadRequest,
		Message: fmt.Sprintf("Missing required field: %s", field),
	}
}

// UploadFailed wraps a storage-side upload failure.
func UploadFailed(err error) *Error {
	return &Error{
		Code:    CodeUpload + 4,
		Status:  fiber.StatusInternalServerError,
		Message: "File upload failed",
		Err:     err,
	}
}
