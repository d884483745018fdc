package config

import (
	"strings"
	"time"
)

const (
	DefaultAdminPassword = "admin123"
	DevSessionSecret     = "society-dev-session-secret" // 仅用于开发环境
)

type Config struct {
	System struct {
		Mode                  string `env:"MODE"`                                      // p 开头视为生产环境
		Host                  string `env:"HOST" envDefault:"0.0.0.0"`                 // 监听地址
		Port                  int    `env:"PORT" envDefault:"3000"`                    // 监听端口
		DBConnectionString    string `env:"DATABASE_URL"`                              // Postgres 数据库的连接字符串，留空使用内存存储
		MemoryFallback        bool   `env:"STORAGE_MEMORY_FALLBACK" envDefault:"false"` // 数据库初始化失败时是否回落到内存存储
		RedisConnectionString string `env:"REDIS_URL"`                                 // Redis 数据库的连接字符串，可选
		FrontendURL           string `env:"FRONTEND_URL"`                              // 额外允许跨域的前端地址
		BodyLimit             string `env:"BODY_LIMIT" envDefault:"50M"`
		UploadMaxBytes        int64  `env:"UPLOAD_MAX_BYTES" envDefault:"10485760"`
	}
	Security struct {
		SessionSecret string        `env:"SESSION_SECRET"`                 // 签名密钥，更新会导致旧有会话失效
		SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	}
	Admin struct {
		Username string `env:"ADMIN_USERNAME" envDefault:"admin"`
		Password string `env:"ADMIN_PASSWORD" envDefault:"admin123"`
		Email    string `env:"ADMIN_EMAIL" envDefault:"admin@society.local"`
	}
}

func (c *Config) IsProd() bool {
	return strings.HasPrefix(strings.ToLower(c.System.Mode), "p")
}
