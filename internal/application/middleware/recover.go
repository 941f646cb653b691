package middleware

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

// SetupRecover turns handler panics into 500 responses instead of killing the process.
func SetupRecover(e *echo.Echo) {
	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		DisablePrintStack: true,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			log.Error(msg.GetMessage("app.panic", c.Request().Method, c.Request().URL.Path, err),
				zap.Error(err),
				zap.ByteString("stack", stack),
			)
			return err
		},
	}))
}
