package apperror

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Business code ranges. Codes are carried in the response envelope and are
// independent of the HTTP status.
const (
	CodeDatabase   = 10100 // 10100-10199 database errors
	CodeConfig     = 10200 // 10200-10299 configuration errors
	CodeSystem     = 10300 // 10300-10399 IO, serialization and other system errors
	CodeValidation = 11000 // 11000-11099 user input validation errors
	CodeUpload     = 11100 // 11100-11199 file upload errors
)

// Error is an application error with a business code, the HTTP status to
// respond with, and an optional wrapped cause.
type Error struct {
	Code    int
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation creates a user-input validation error (HTTP 400).
func Validation(msg string) *Error {
	return &Error{Code: CodeValidation, Status: fiber.StatusBadRequest, Message: msg}
}

// Database wraps a database failure (HTTP 500). The cause is logged, not
// leaked to the client.
func Database(err error) *Error {
	return &Error{Code: CodeDatabase, Status: fiber.StatusInternalServerError, Message: "Database error", Err: err}
}

// Internal wraps any other system failure (HTTP 500).
func Internal(err error) *Error {
	return &Error{Code: CodeSystem, Status: fiber.StatusInternalServerError, Message: "Internal server error", Err: err}
}
