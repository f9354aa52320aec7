//go:build unit

package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"slotsync/internal/handler/middleware"
	"slotsync/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogConfig() config.LogConfig {
	return config.LogConfig{
		Level:      "info",
		TimeZone:   "UTC",
		TimeFormat: "2006-01-02 15:04:05.000",
	}
}

func performLogged(t *testing.T, logger *slog.Logger, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.LoggingMiddleware(logger, testLogConfig()))
	engine.GET("/diary", handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/diary", nil)
	engine.ServeHTTP(w, req)
	return w
}

func TestLoggingMiddleware(t *testing.T) {
	t.Run("writes through the injected logger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))

		w := performLogged(t, logger, func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		require.Equal(t, http.StatusOK, w.Code)
		out := buf.String()
		assert.Contains(t, out, "Request started")
		assert.Contains(t, out, "Request completed")
		assert.Contains(t, out, `"path":"/diary"`)
	})

	t.Run("leaves the process default logger alone", func(t *testing.T) {
		before := slog.Default()

		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))
		performLogged(t, logger, func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		assert.Same(t, before, slog.Default())
	})

	t.Run("assigns a request id visible to handlers", func(t *testing.T) {
		logger := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))

		var requestID string
		performLogged(t, logger, func(c *gin.Context) {
			requestID = middleware.GetRequestID(c)
			c.Status(http.StatusOK)
		})

		assert.NotEmpty(t, requestID)
	})
}
