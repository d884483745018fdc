package handlers

import (
	"context"
	"github.com/labstack/echo/v4"
	"society-cms/app/server/models"
)

func (a *App) ScholarshipList(c echo.Context) error {
	return list(a, c, "scholarships", func(ctx context.Context) ([]models.Scholarship, error) {
		return a.st.ListScholarships(ctx, boolQuery(c, "published"))
	})
}

func (a *App) ScholarshipGet(c echo.Context) error {
	return getOne(a, c, "scholarship", a.st.GetScholarship)
}

func (a *App) ScholarshipCreate(c echo.Context) error {
	return createOne(a, c, "scholarship", a.st.CreateScholarship)
}

func (a *App) ScholarshipUpdate(c echo.Context) error {
	return updateOne(a, c, "scholarship", a.st.UpdateScholarship)
}

func (a *App) ScholarshipDelete(c echo.Context) error {
	return deleteOne(a, c, "scholarship", a.st.DeleteScholarship)
}
