package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"society-cms/app/server/constants"
	"society-cms/app/server/models"
)

// Cached 在任意存储之上缓存设置项。设置在每次提交入会申请时都会读取，值得缓存。
// 缓存故障只记录日志，然后回落到被包装的存储。
type Cached struct {
	Storage
	rdb *redis.Client
	l   *zap.Logger
}

func NewCached(st Storage, rdb *redis.Client, l *zap.Logger) *Cached {
	return &Cached{
		Storage: st,
		rdb:     rdb,
		l:       l,
	}
}

func (s *Cached) Kind() string {
	return s.Storage.Kind() + "+redis"
}

func (s *Cached) GetSettingByKey(ctx context.Context, key string) (*models.Setting, error) {
	cacheKey := fmt.Sprintf(constants.CacheKeySetting, key)

	// 查询缓存
	if cacheBytes, err := s.rdb.Get(ctx, cacheKey).Bytes(); err != nil {
		if !errors.Is(err, redis.Nil) {
			s.l.Error("failed to query cache for setting", zap.String("key", key), zap.Error(err))
		}
	} else {
		var setting models.Setting
		if err = json.Unmarshal(cacheBytes, &setting); err != nil {
			s.l.Error("failed to unmarshal setting", zap.String("key", key), zap.ByteString("cacheBytes", cacheBytes), zap.Error(err))
			// 可能是无效的缓存，清理掉
			s.rdb.Del(ctx, cacheKey)
		} else {
			return &setting, nil
		}
	}

	// 查询存储
	setting, err := s.Storage.GetSettingByKey(ctx, key)
	if err != nil || setting == nil {
		// 不存在的设置不缓存
		return setting, err
	}

	s.store(ctx, setting)
	return setting, nil
}

func (s *Cached) UpsertSetting(ctx context.Context, key string, value string) (*models.Setting, error) {
	setting, err := s.Storage.UpsertSetting(ctx, key, value)
	if err != nil {
		// 写入结果未知，清掉旧缓存
		s.rdb.Del(ctx, fmt.Sprintf(constants.CacheKeySetting, key))
		return nil, err
	}

	s.store(ctx, setting)
	return setting, nil
}

func (s *Cached) store(ctx context.Context, setting *models.Setting) {
	cacheKey := fmt.Sprintf(constants.CacheKeySetting, setting.Key)
	cacheBytes, err := json.Marshal(setting)
	if err != nil {
		s.l.Error("failed to marshal setting", zap.String("key", setting.Key), zap.Error(err))
		return
	}
	if err = s.rdb.Set(ctx, cacheKey, cacheBytes, constants.CacheExpireSetting).Err(); err != nil {
		s.l.Error("failed to cache setting", zap.String("key", setting.Key), zap.Error(err))
	}
}
