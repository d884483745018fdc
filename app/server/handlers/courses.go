package handlers

import (
	"context"
	"github.com/labstack/echo/v4"
	"society-cms/app/server/models"
)

func (a *App) CourseList(c echo.Context) error {
	return list(a, c, "courses", func(ctx context.Context) ([]models.Course, error) {
		return a.st.ListCourses(ctx, boolQuery(c, "published"))
	})
}

func (a *App) CourseGet(c echo.Context) error {
	return getOne(a, c, "course", a.st.GetCourse)
}

func (a *App) CourseCreate(c echo.Context) error {
	return createOne(a, c, "course", a.st.CreateCourse)
}

func (a *App) CourseUpdate(c echo.Context) error {
	return updateOne(a, c, "course", a.st.UpdateCourse)
}

func (a *App) CourseDelete(c echo.Context) error {
	return deleteOne(a, c, "course", a.st.DeleteCourse)
}
