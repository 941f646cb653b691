package middleware

import "github.com/labstack/echo/v4"

// Setup registers every middleware, outermost first. Metrics writes the error
// response, so the request logger inside it still sees the handler error.
func Setup(e *echo.Echo) {
	SetupMetrics(e)
	SetupRequestLogger(e)
	SetupRecover(e)
}
