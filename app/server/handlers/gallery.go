package handlers

import (
	"context"
	"github.com/labstack/echo/v4"
	"society-cms/app/server/models"
)

// GalleryList 带 category 参数时只返回该分类中已发布的
func (a *App) GalleryList(c echo.Context) error {
	if category := c.QueryParam("category"); category != "" {
		return list(a, c, "gallery images", func(ctx context.Context) ([]models.Gallery, error) {
			return a.st.GetGalleryByCategory(ctx, category)
		})
	}
	return list(a, c, "gallery images", func(ctx context.Context) ([]models.Gallery, error) {
		return a.st.ListGalleryImages(ctx, boolQuery(c, "published"))
	})
}

func (a *App) GalleryGet(c echo.Context) error {
	return getOne(a, c, "gallery image", a.st.GetGalleryImage)
}

func (a *App) GalleryCreate(c echo.Context) error {
	return createOne(a, c, "gallery image", a.st.CreateGalleryImage)
}

func (a *App) GalleryUpdate(c echo.Context) error {
	return updateOne(a, c, "gallery image", a.st.UpdateGalleryImage)
}

func (a *App) GalleryDelete(c echo.Context) error {
	return deleteOne(a, c, "gallery image", a.st.DeleteGalleryImage)
}
