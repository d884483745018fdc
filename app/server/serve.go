package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"net"
	"net/http"
	"os/signal"
	"society-cms/app/server/config"
	"society-cms/app/server/handlers"
	"society-cms/app/server/inits"
	"society-cms/app/server/middlewares"
	"society-cms/app/server/validation"
	"strconv"
	"syscall"
	"time"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func serve(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// 初始化日志
	l, err := inits.Logger(!cfg.IsProd())
	if err != nil {
		return fmt.Errorf("error initializing logger: %w", err)
	}
	defer l.Sync()

	l.Debug("logger initialized")

	// 初始化 redis 连接（可选）
	var rdb *redis.Client
	if cfg.System.RedisConnectionString != "" {
		if rdb, err = inits.Redis(ctx, cfg.System.RedisConnectionString); err != nil {
			l.Fatal("error initializing Redis connection", zap.Error(err))
		}
		defer rdb.Close()
	}

	// 初始化存储
	st, err := inits.Storage(ctx, cfg, rdb, l)
	if err != nil {
		l.Fatal("error initializing storage", zap.Error(err))
	}
	defer st.Close()

	// 初始化会话
	sm, sessions, err := inits.Session(cfg, rdb)
	if err != nil {
		l.Fatal("error initializing session", zap.Error(err))
	}
	defer sessions.Close()

	// 准备 handler app
	handlerApp := handlers.NewApp(l, st, sm, validation.New(), cfg.System.UploadMaxBytes)

	// 准备 echo 服务
	e := newEcho(cfg, l)
	handlerApp.Register(e, middlewares.AdminAuth(sm, st, l))

	// 启动 echo 服务
	addr := net.JoinHostPort(cfg.System.Host, strconv.Itoa(cfg.System.Port))
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Error("server stopped unexpectedly", zap.Error(err))
			stop()
		}
	}()
	l.Info("server started", zap.String("addr", addr), zap.Bool("production", cfg.IsProd()))

	<-ctx.Done()

	// 等待进行中的请求结束
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		l.Error("failed to shut down the server", zap.Error(err))
	}
	l.Info("server stopped")

	return nil
}

func newEcho(cfg *config.Config, l *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middlewares.ErrorHandler(l)

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogMethod:  true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l.Info("request",
				zap.String("method", v.Method),
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			)

			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middlewares.CORS(cfg.System.FrontendURL))
	e.Use(middleware.BodyLimit(cfg.System.BodyLimit))

	return e
}
