package handlers

import (
	"context"
	"github.com/labstack/echo/v4"
	"society-cms/app/server/models"
)

func (a *App) LeadershipList(c echo.Context) error {
	return list(a, c, "leadership", func(ctx context.Context) ([]models.Leadership, error) {
		return a.st.ListLeadership(ctx, boolQuery(c, "active"))
	})
}

func (a *App) LeadershipGet(c echo.Context) error {
	return getOne(a, c, "leadership member", a.st.GetLeadershipMember)
}

func (a *App) LeadershipCreate(c echo.Context) error {
	return createOne(a, c, "leadership member", a.st.CreateLeadershipMember)
}

func (a *App) LeadershipUpdate(c echo.Context) error {
	return updateOne(a, c, "leadership member", a.st.UpdateLeadershipMember)
}

func (a *App) LeadershipDelete(c echo.Context) error {
	return deleteOne(a, c, "leadership member", a.st.DeleteLeadershipMember)
}
