package handlers

import (
	"context"
	"errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"society-cms/app/server/storage"
	"society-cms/app/server/types"
)

// 各实体共用的增删改查流程。what 只用于日志和错误信息

// boolQuery 只接受 true / false ，其他值视为不过滤
func boolQuery(c echo.Context, name string) *bool {
	switch c.QueryParam(name) {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	default:
		return nil
	}
}

func list[T any](a *App, c echo.Context, what string, fetch func(ctx context.Context) ([]T, error)) error {
	rows, err := fetch(c.Request().Context())
	if err != nil {
		return a.ise(c, err, "failed to list "+what)
	}
	return c.JSON(http.StatusOK, rows)
}

func getOne[T any](a *App, c echo.Context, what string, fetch func(ctx context.Context, id string) (*T, error)) error {
	id := c.Param("id")
	row, err := fetch(c.Request().Context(), id)
	if err != nil {
		return a.ise(c, err, "failed to get "+what, zap.String("id", id))
	} else if row == nil {
		return a.erMsg(c, http.StatusNotFound, what+" not found")
	}
	return c.JSON(http.StatusOK, row)
}

func createOne[In any, T any](a *App, c echo.Context, what string, do func(ctx context.Context, in In) (*T, error)) error {
	var req In
	if ok, err := a.bindValid(c, &req); !ok {
		return err
	}

	row, err := do(c.Request().Context(), req)
	if errors.Is(err, storage.ErrDuplicate) {
		return a.erMsg(c, http.StatusConflict, what+" already exists")
	} else if err != nil {
		return a.ise(c, err, "failed to create "+what)
	}
	return c.JSON(http.StatusCreated, row)
}

func updateOne[P any, T any](a *App, c echo.Context, what string, do func(ctx context.Context, id string, patch P) (*T, error)) error {
	id := c.Param("id")

	var req P
	if ok, err := a.bindValid(c, &req); !ok {
		return err
	}

	row, err := do(c.Request().Context(), id, req)
	if errors.Is(err, storage.ErrDuplicate) {
		return a.erMsg(c, http.StatusConflict, what+" already exists")
	} else if err != nil {
		return a.ise(c, err, "failed to update "+what, zap.String("id", id))
	} else if row == nil {
		return a.erMsg(c, http.StatusNotFound, what+" not found")
	}
	return c.JSON(http.StatusOK, row)
}

func deleteOne(a *App, c echo.Context, what string, do func(ctx context.Context, id string) (bool, error)) error {
	id := c.Param("id")
	deleted, err := do(c.Request().Context(), id)
	if err != nil {
		return a.ise(c, err, "failed to delete "+what, zap.String("id", id))
	} else if !deleted {
		return a.erMsg(c, http.StatusNotFound, what+" not found")
	}
	return c.JSON(http.StatusOK, &types.SuccessMessage{Success: true})
}
