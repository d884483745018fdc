package handlers

import (
	"github.com/labstack/echo/v4"
	"net/http"
	"society-cms/app/server/types"
)

func (a *App) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, &types.HealthResponse{
		Status:  "ok",
		Storage: a.st.Kind(),
	})
}
