package middleware

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"weather-relay/pkg/log"
)

// SetupRecover turns handler panics into a 500 and logs the stack.
func SetupRecover(e *echo.Echo) {
	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		LogErrorFunc: logPanic,
	}))
}

func logPanic(c echo.Context, err error, stack []byte) error {
	log.Error("panic recovered",
		zap.String("uri", c.Request().RequestURI),
		zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
		zap.ByteString("stack", stack),
		zap.Error(err),
	)
	return err
}
