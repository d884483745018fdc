package handlers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"society-cms/app/server/models"
)

func (a *App) SettingGet(c echo.Context) error {
	key := c.Param("key")
	setting, err := a.st.GetSettingByKey(c.Request().Context(), key)
	if err != nil {
		return a.ise(c, err, "failed to get setting", zap.String("key", key))
	} else if setting == nil {
		return a.erMsg(c, http.StatusNotFound, "Setting not found")
	}
	return c.JSON(http.StatusOK, setting)
}

func (a *App) SettingList(c echo.Context) error {
	return list(a, c, "settings", a.st.ListSettings)
}

func (a *App) SettingUpdate(c echo.Context) error {
	key := c.Param("key")

	var req models.SettingInput
	if ok, err := a.bindValid(c, &req); !ok {
		return err
	}

	setting, err := a.st.UpsertSetting(c.Request().Context(), key, req.Value)
	if err != nil {
		return a.ise(c, err, "failed to update setting", zap.String("key", key))
	}
	return c.JSON(http.StatusOK, setting)
}
