package handlers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"society-cms/app/server/types"
	"society-cms/app/server/validation"
)

func (a *App) er(c echo.Context, statusCode int) error {
	return a.erMsg(c, statusCode, http.StatusText(statusCode))
}

func (a *App) erMsg(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, &types.ErrorMessage{
		Error: message,
	})
}

// ise 记录错误日志，只向客户端返回通用信息
func (a *App) ise(c echo.Context, err error, msg string, fields ...zap.Field) error {
	a.l.Error(msg, append(fields, zap.Error(err))...)
	return a.erMsg(c, http.StatusInternalServerError, "Internal server error")
}

func (a *App) invalid(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, &types.ErrorMessage{
		Error:   "Invalid data",
		Details: validation.Details(err),
	})
}

// bindValid 绑定并校验请求体。返回 false 时响应已经写出
func (a *App) bindValid(c echo.Context, req any) (bool, error) {
	// 绑定请求体
	if err := c.Bind(req); err != nil {
		a.l.Debug("failed to bind request", zap.Error(err))
		return false, a.erMsg(c, http.StatusBadRequest, "Invalid request body")
	}

	// 校验
	if err := a.v.Validate(req); err != nil {
		return false, a.invalid(c, err)
	}

	return true, nil
}
