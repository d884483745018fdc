package handlers

import (
	"context"
	"github.com/labstack/echo/v4"
	"society-cms/app/server/models"
)

func (a *App) NewsList(c echo.Context) error {
	return list(a, c, "news", func(ctx context.Context) ([]models.News, error) {
		return a.st.ListNews(ctx, boolQuery(c, "published"))
	})
}

func (a *App) NewsFeatured(c echo.Context) error {
	return list(a, c, "featured news", a.st.GetFeaturedNews)
}

func (a *App) NewsGet(c echo.Context) error {
	return getOne(a, c, "news", a.st.GetNews)
}

// NewsCreate 作者为当前登录的管理员
func (a *App) NewsCreate(c echo.Context) error {
	author := currentAdmin(c)
	return createOne(a, c, "news", func(ctx context.Context, in models.NewsInput) (*models.News, error) {
		var authorID *string
		if author != nil {
			authorID = &author.ID
		}
		return a.st.CreateNews(ctx, in, authorID)
	})
}

func (a *App) NewsUpdate(c echo.Context) error {
	return updateOne(a, c, "news", a.st.UpdateNews)
}

func (a *App) NewsDelete(c echo.Context) error {
	return deleteOne(a, c, "news", a.st.DeleteNews)
}
