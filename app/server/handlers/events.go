package handlers

import (
	"context"
	"github.com/labstack/echo/v4"
	"society-cms/app/server/models"
)

func (a *App) EventList(c echo.Context) error {
	return list(a, c, "events", func(ctx context.Context) ([]models.Event, error) {
		return a.st.ListEvents(ctx, boolQuery(c, "published"))
	})
}

func (a *App) EventUpcoming(c echo.Context) error {
	return list(a, c, "upcoming events", a.st.GetUpcomingEvents)
}

func (a *App) EventGet(c echo.Context) error {
	return getOne(a, c, "event", a.st.GetEvent)
}

func (a *App) EventCreate(c echo.Context) error {
	return createOne(a, c, "event", a.st.CreateEvent)
}

func (a *App) EventUpdate(c echo.Context) error {
	return updateOne(a, c, "event", a.st.UpdateEvent)
}

func (a *App) EventDelete(c echo.Context) error {
	return deleteOne(a, c, "event", a.st.DeleteEvent)
}
