package inits

import (
	"context"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"society-cms/app/server/config"
	"society-cms/app/server/storage"
	"testing"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Admin.Username = "admin"
	cfg.Admin.Password = "password123"
	cfg.Admin.Email = "admin@society.local"
	cfg.Security.SessionSecret = "secret"
	return cfg
}

func TestStorageWithoutDatabase(t *testing.T) {
	ctx := context.Background()
	st, err := Storage(ctx, testConfig(), nil, zap.NewNop())
	require.NoError(t, err)
	defer st.Close()

	assert.IsType(t, &storage.Memory{}, st)

	user, err := st.GetAdminUserByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, user)

	featured, err := st.GetFeaturedNews(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, user.ID, *featured[0].AuthorID)
}

func TestStorageDatabaseFailure(t *testing.T) {
	cfg := testConfig()
	cfg.System.DBConnectionString = "postgres://nobody@127.0.0.1:1/none?sslmode=disable&connect_timeout=1"

	_, err := Storage(context.Background(), cfg, nil, zap.NewNop())
	assert.Error(t, err)

	cfg.System.MemoryFallback = true
	st, err := Storage(context.Background(), cfg, nil, zap.NewNop())
	require.NoError(t, err)
	defer st.Close()
	assert.Equal(t, "memory", st.Kind())
}

func TestStorageMemoryIsNotCached(t *testing.T) {
	// 不会真正连接
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer rdb.Close()

	st, err := Storage(context.Background(), testConfig(), rdb, zap.NewNop())
	require.NoError(t, err)
	defer st.Close()

	assert.IsType(t, &storage.Memory{}, st)
	assert.Equal(t, "memory", st.Kind())
}

func TestSessionWithoutRedis(t *testing.T) {
	sm, store, err := Session(testConfig(), nil)
	require.NoError(t, err)
	require.NotNil(t, sm)
	require.NoError(t, store.Close())
}
