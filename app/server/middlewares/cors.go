package middlewares

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// 本地开发时 vite 可能占用的端口范围
const (
	devPortMin = 5173
	devPortMax = 5177
)

// AllowOrigin 允许本地开发端口、配置的前端地址以及 vercel 预览域名
func AllowOrigin(frontendURL string) func(origin string) (bool, error) {
	frontendURL = strings.TrimRight(frontendURL, "/")
	return func(origin string) (bool, error) {
		if frontendURL != "" && origin == frontendURL {
			return true, nil
		}

		u, err := url.Parse(origin)
		if err != nil || u.Host == "" {
			return false, nil
		}

		switch host := u.Hostname(); {
		case u.Scheme == "http" && (host == "localhost" || host == "127.0.0.1"):
			port, err := strconv.Atoi(u.Port())
			return err == nil && port >= devPortMin && port <= devPortMax, nil
		case u.Scheme == "https" && strings.HasSuffix(host, ".vercel.app"):
			return true, nil
		}

		return false, nil
	}
}

func CORS(frontendURL string) echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOriginFunc:  AllowOrigin(frontendURL),
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	})
}
