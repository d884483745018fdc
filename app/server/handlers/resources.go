package handlers

import (
	"context"
	"github.com/labstack/echo/v4"
	"society-cms/app/server/models"
)

func (a *App) ResourceList(c echo.Context) error {
	return list(a, c, "resources", func(ctx context.Context) ([]models.Resource, error) {
		return a.st.ListResources(ctx, boolQuery(c, "published"))
	})
}

func (a *App) ResourceGet(c echo.Context) error {
	return getOne(a, c, "resource", a.st.GetResource)
}

func (a *App) ResourceCreate(c echo.Context) error {
	return createOne(a, c, "resource", a.st.CreateResource)
}

func (a *App) ResourceUpdate(c echo.Context) error {
	return updateOne(a, c, "resource", a.st.UpdateResource)
}

func (a *App) ResourceDelete(c echo.Context) error {
	return deleteOne(a, c, "resource", a.st.DeleteResource)
}
