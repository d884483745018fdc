package handlers

import (
	"context"
	"fmt"
	"github.com/alexedwards/argon2id"
	"github.com/labstack/echo/v4"
	"society-cms/app/server/models"
)

func hashPassword(password string) (string, error) {
	hash, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return hash, nil
}

func (a *App) UserList(c echo.Context) error {
	return list(a, c, "admin users", a.st.ListAdminUsers)
}

func (a *App) UserGet(c echo.Context) error {
	return getOne(a, c, "admin user", a.st.GetAdminUser)
}

// UserCreate 存储层只会收到哈希后的密码
func (a *App) UserCreate(c echo.Context) error {
	return createOne(a, c, "admin user", func(ctx context.Context, in models.AdminUserInput) (*models.AdminUser, error) {
		hash, err := hashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		in.Password = hash
		return a.st.CreateAdminUser(ctx, in)
	})
}

func (a *App) UserUpdate(c echo.Context) error {
	return updateOne(a, c, "admin user", func(ctx context.Context, id string, patch models.AdminUserPatch) (*models.AdminUser, error) {
		if patch.Password != nil {
			hash, err := hashPassword(*patch.Password)
			if err != nil {
				return nil, err
			}
			patch.Password = &hash
		}
		return a.st.UpdateAdminUser(ctx, id, patch)
	})
}

func (a *App) UserDelete(c echo.Context) error {
	return deleteOne(a, c, "admin user", a.st.DeleteAdminUser)
}
