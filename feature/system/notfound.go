package system

import (
	_ "embed"
	"html/template"
	"time"

	"dropbuddy/core/logger"
	"dropbuddy/core/middleware/requestid"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

//go:embed assets/favicon.ico
var faviconBytes []byte

//go:embed assets/404.html
var notFoundHTML string

var notFoundTemplate = template.Must(template.New("404").Parse(notFoundHTML))

// notFoundData is the data rendered into the 404 page.
type notFoundData struct {
	RequestPath string
	Timestamp   string
	RequestID   string
}

// NotFoundHandler returns the catch-all handler rendering the HTML 404 page.
// It is registered last, after every feature route.
func NotFoundHandler(logg *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data := notFoundData{
			RequestPath: c.Path(),
			Timestamp:   time.Now().UTC().Format("2006-01-02 15:04:05 UTC"),
			RequestID:   requestid.FromCtx(c),
		}

		l := logger.WithRequestID(logg, c)
		l.Debug("rendering 404 page", zap.String("path", data.RequestPath))

		c.Status(fiber.StatusNotFound)
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		if err := notFoundTemplate.Execute(c.Response().BodyWriter(), data); err != nil {
			l.Error("failed to render 404 page", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
		}
		return nil
	}
}
