// Package session 保存登录会话。
// cookie 中只放签名过的会话 ID ，会话与管理员的对应关系保存在 Store 中，登出即可失效。
package session

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("session not found")

type Store interface {
	Create(ctx context.Context, sid string, adminID string, ttl time.Duration) error
	// Get 返回会话对应的管理员 ID ，不存在或已过期时返回 ErrNotFound
	Get(ctx context.Context, sid string) (string, error)
	Delete(ctx context.Context, sid string) error
	Close() error
}
