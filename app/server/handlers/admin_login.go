package handlers

import (
	"github.com/alexedwards/argon2id"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"society-cms/app/server/types"
)

type loginRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

func (a *App) AuthLogin(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		a.l.Debug("failed to bind json body", zap.Error(err))
		return a.erMsg(c, http.StatusBadRequest, "Invalid request body")
	}

	// 没有写用户名或密码
	if req.Username == nil || req.Password == nil || *req.Username == "" || *req.Password == "" {
		return a.erMsg(c, http.StatusBadRequest, "Username and password are required")
	}

	user, err := a.st.GetAdminUserByUsername(rctx, *req.Username)
	if err != nil {
		return a.ise(c, err, "failed to find user")
	} else if user == nil || !user.IsActive {
		return a.erMsg(c, http.StatusUnauthorized, "Invalid credentials")
	}

	// 提取密码 hash 并进行校验
	if match, _, err := argon2id.CheckHash(*req.Password, user.Password); err != nil {
		// CheckHash 只在解析存储的哈希时出错，存量数据里的密码不是 argon2id 格式
		a.l.Warn("stored password is not a valid argon2id hash", zap.String("username", user.Username), zap.Error(err))
		return a.erMsg(c, http.StatusUnauthorized, "Invalid credentials")
	} else if !match {
		// 密码不一致
		return a.erMsg(c, http.StatusUnauthorized, "Invalid credentials")
	}

	// 创建会话
	if err = a.sm.Start(c, user.ID); err != nil {
		return a.ise(c, err, "failed to start session", zap.String("username", user.Username))
	}

	a.l.Info("admin logged in", zap.String("username", user.Username))

	// 返回
	return c.JSON(http.StatusOK, &types.UserResponse{
		User: user,
	})
}

func (a *App) AuthLogout(c echo.Context) error {
	if err := a.sm.End(c); err != nil {
		return a.ise(c, err, "failed to end session")
	}
	return c.JSON(http.StatusOK, &types.SuccessMessage{Success: true})
}

func (a *App) AuthMe(c echo.Context) error {
	user := currentAdmin(c)
	if user == nil {
		return a.erMsg(c, http.StatusUnauthorized, "Unauthorized")
	}
	return c.JSON(http.StatusOK, &types.UserResponse{
		User: user,
	})
}
