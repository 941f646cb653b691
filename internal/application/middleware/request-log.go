package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

// SetupRequestLogger registers the request logging middleware with custom log output.
func SetupRequestLogger(e *echo.Echo) {
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRequestID: true,
		Skipper:      skipHealthAndMetrics,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			logRequestValues(v)
			return nil
		},
	}))
}

var logRequestValues = func(v echomw.RequestLoggerValues) {
	fields := []zap.Field{
		zap.String("method", v.Method),
		zap.String("uri", v.URI),
		zap.Int("status", v.Status),
		zap.Duration("latency", v.Latency),
		zap.String("request_id", v.RequestID),
	}
	if v.Error == nil && v.Status < 500 {
		log.Info(msg.GetMessage("app.req-end", v.Method, v.URI, v.Status, v.Latency, v.RequestID), fields...)
		return
	}
	if v.Error != nil {
		fields = append(fields, zap.Error(v.Error))
	}
	log.Error(msg.GetMessage("app.req-fail", v.Method, v.URI, v.Status, v.Latency, v.RequestID, v.Error), fields...)
}

// skipHealthAndMetrics keeps liveness and scrape traffic out of the logs
func skipHealthAndMetrics(c echo.Context) bool {
	path := c.Request().URL.Path
	return strings.HasSuffix(path, "/health") || strings.HasSuffix(path, "/metrics")
}
