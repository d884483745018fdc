package handlers

import (
	"context"
	"github.com/labstack/echo/v4"
	"society-cms/app/server/models"
)

// PublicationList 带 type 参数时只返回该类型中已发布的
func (a *App) PublicationList(c echo.Context) error {
	if pubType := c.QueryParam("type"); pubType != "" {
		return list(a, c, "publications", func(ctx context.Context) ([]models.Publication, error) {
			return a.st.GetPublicationsByType(ctx, pubType)
		})
	}
	return list(a, c, "publications", func(ctx context.Context) ([]models.Publication, error) {
		return a.st.ListPublications(ctx, boolQuery(c, "published"))
	})
}

func (a *App) PublicationGet(c echo.Context) error {
	return getOne(a, c, "publication", a.st.GetPublication)
}

func (a *App) PublicationCreate(c echo.Context) error {
	return createOne(a, c, "publication", a.st.CreatePublication)
}

func (a *App) PublicationUpdate(c echo.Context) error {
	return updateOne(a, c, "publication", a.st.UpdatePublication)
}

func (a *App) PublicationDelete(c echo.Context) error {
	return deleteOne(a, c, "publication", a.st.DeletePublication)
}
