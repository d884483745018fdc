package middlewares

import (
	"errors"
	"fmt"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"society-cms/app/server/types"
)

// ErrorHandler 把 echo 自身产生的错误（路由不存在、请求体过大等）也转换为 {error} 格式
func ErrorHandler(l *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := "Internal server error"

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			message = http.StatusText(code)
			if code < http.StatusInternalServerError {
				message = fmt.Sprint(he.Message)
			}
		} else {
			l.Error("unhandled error", zap.String("uri", c.Request().RequestURI), zap.Error(err))
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(code)
		} else {
			werr = c.JSON(code, &types.ErrorMessage{Error: message})
		}
		if werr != nil {
			l.Error("failed to write error response", zap.Error(werr))
		}
	}
}
