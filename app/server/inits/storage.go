package inits

import (
	"context"
	"fmt"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"society-cms/app/server/config"
	"society-cms/app/server/storage"
)

// Storage 选定本次运行使用的存储，之后不再改变。
// 没有配置数据库时使用内存存储；数据库初始化失败时只有显式允许才会回落。
func Storage(ctx context.Context, cfg *config.Config, rdb *redis.Client, l *zap.Logger) (storage.Storage, error) {
	var st storage.Storage

	if cfg.System.DBConnectionString == "" {
		l.Warn("DATABASE_URL not set, data will not survive restarts")
		st = storage.NewMemory()
	} else if db, err := DB(cfg.System.DBConnectionString); err != nil {
		if !cfg.System.MemoryFallback {
			return nil, err
		}
		l.Error("failed to initialize database, falling back to memory storage", zap.Error(err))
		st = storage.NewMemory()
	} else {
		st = storage.NewDB(db)
	}

	if err := seed(ctx, cfg, st, l); err != nil {
		_ = st.Close()
		return nil, err
	}

	// 设置项缓存只包装数据库存储，内存存储重启即清空
	if rdb != nil {
		if _, ok := st.(*storage.DB); ok {
			st = storage.NewCached(st, rdb, l)
		} else {
			l.Info("settings cache disabled for memory storage")
		}
	}

	l.Info("storage initialized", zap.String("kind", st.Kind()))
	return st, nil
}

func seed(ctx context.Context, cfg *config.Config, st storage.Storage, l *zap.Logger) error {
	user, err := storage.SeedAdmin(ctx, st, storage.AdminSeed{
		Username: cfg.Admin.Username,
		Password: cfg.Admin.Password,
		Email:    cfg.Admin.Email,
	})
	if err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	} else if user == nil {
		// 已有管理员
		return nil
	}

	l.Info("admin user created", zap.String("username", user.Username))
	if cfg.Admin.Password == config.DefaultAdminPassword {
		l.Warn("admin user created with the default password, set ADMIN_PASSWORD", zap.String("username", user.Username))
	}

	// 内存存储每次启动都是空的，放一条示例新闻
	if _, ok := st.(*storage.Memory); ok {
		if err = storage.SeedSampleNews(ctx, st, user.ID); err != nil {
			return err
		}
	}

	return nil
}
