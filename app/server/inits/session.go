package inits

import (
	"fmt"
	"github.com/redis/go-redis/v9"
	"society-cms/app/server/config"
	"society-cms/app/server/jwt"
	"society-cms/app/server/session"
)

// Session 有 Redis 时会话保存在 Redis ，否则保存在进程内
func Session(cfg *config.Config, rdb *redis.Client) (*session.Manager, session.Store, error) {
	j, err := jwt.New(cfg.Security.SessionSecret)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init jwt: %w", err)
	}

	var store session.Store
	if rdb != nil {
		store = session.NewRedis(rdb)
	} else if store, err = session.NewMemory(); err != nil {
		return nil, nil, err
	}

	return session.NewManager(store, j, cfg.Security.SessionTTL, cfg.IsProd()), store, nil
}
