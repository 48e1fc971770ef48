package handler

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"drivematch/internal/delivery/http/middleware"
	"drivematch/internal/delivery/http/validator"

	"github.com/labstack/echo/v4"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestContext builds an echo context wired the same way the real server
// is: request validator installed, JSON content type set.
func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

// handleError funnels a handler error through the server's error handler so
// tests observe the same status codes and envelopes as clients do.
func handleError(t *testing.T, err error, c echo.Context) {
	t.Helper()

	middleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError(err, c)
}
