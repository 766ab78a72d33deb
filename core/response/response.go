package response

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Response is the uniform envelope for all JSON API responses.
//
// Code is a business status code, independent of the HTTP status: 0 means
// success, anything else is an error. Error responses never carry data.
type Response struct {
	// Code is the business status code (0 = success).
	Code int `json:"code"`
	// Msg is the human-readable response message.
	Msg string `json:"msg"`
	// Data carries the payload on success; null on errors.
	Data any `json:"data"`
	// Timestamp is the construction time in RFC 3339 format.
	Timestamp string `json:"timestamp"`
}

// New creates an envelope with the given code, message and data.
func New(code int, msg string, data any) Response {
	return Response{
		Code:      code,
		Msg:       msg,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// Success creates a success envelope (code 0) around data.
func Success(data any) Response {
	return New(0, "Success", data)
}

// Error creates an error envelope. Data is always null.
func Error(code int, msg string) Response {
	return New(code, msg, nil)
}

// Fail creates a generic failure envelope with code 1.
func Fail(msg string) Response {
	return Error(1, msg)
}

// JSON writes a success envelope to the Fiber context.
func JSON(c *fiber.Ctx, data any) error {
	return c.JSON(Success(data))
}
