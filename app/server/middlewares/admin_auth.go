package middlewares

import (
	"errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"society-cms/app/server/constants"
	"society-cms/app/server/session"
	"society-cms/app/server/storage"
	"society-cms/app/server/types"
)

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, &types.ErrorMessage{
		Error: "Unauthorized",
	})
}

// AdminAuth 要求有效的登录会话，并且管理员仍然存在且处于启用状态
func AdminAuth(sm *session.Manager, st storage.Storage, l *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rctx := c.Request().Context()

			// 查询会话
			adminID, err := sm.AdminID(c)
			if err != nil {
				if !errors.Is(err, session.ErrNotFound) {
					l.Error("failed to query session", zap.Error(err))
					return c.JSON(http.StatusInternalServerError, &types.ErrorMessage{
						Error: "Internal server error",
					})
				}
				return unauthorized(c)
			}

			// 查询管理员
			user, err := st.GetAdminUser(rctx, adminID)
			if err != nil {
				l.Error("failed to get admin user", zap.String("id", adminID), zap.Error(err))
				return c.JSON(http.StatusInternalServerError, &types.ErrorMessage{
					Error: "Internal server error",
				})
			} else if user == nil || !user.IsActive {
				// 账号已删除或停用
				return unauthorized(c)
			}

			// 设置 context
			c.Set(constants.SessionContextUser, user)

			// 继续处理
			return next(c)
		}
	}
}
