package handlers

import (
	"github.com/labstack/echo/v4"
	"society-cms/app/server/constants"
	"society-cms/app/server/models"
)

// currentAdmin 由 AdminAuth 中间件放入 context
func currentAdmin(c echo.Context) *models.AdminUser {
	user, _ := c.Get(constants.SessionContextUser).(*models.AdminUser)
	return user
}
