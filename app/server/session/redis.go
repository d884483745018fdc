package session

import (
	"context"
	"errors"
	"fmt"
	"github.com/redis/go-redis/v9"
	"society-cms/app/server/constants"
	"time"
)

// Redis 多实例部署时共享的会话存储，过期交给 Redis 处理
type Redis struct {
	rdb *redis.Client
}

func NewRedis(rdb *redis.Client) *Redis {
	return &Redis{rdb: rdb}
}

func key(sid string) string {
	return fmt.Sprintf(constants.CacheKeySession, sid)
}

func (r *Redis) Create(ctx context.Context, sid string, adminID string, ttl time.Duration) error {
	return r.rdb.Set(ctx, key(sid), adminID, ttl).Err()
}

func (r *Redis) Get(ctx context.Context, sid string) (string, error) {
	adminID, err := r.rdb.Get(ctx, key(sid)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	} else if err != nil {
		return "", err
	}
	return adminID, nil
}

func (r *Redis) Delete(ctx context.Context, sid string) error {
	return r.rdb.Del(ctx, key(sid)).Err()
}

// Close 不关闭 Redis 连接，连接由创建者管理
func (r *Redis) Close() error {
	return nil
}
