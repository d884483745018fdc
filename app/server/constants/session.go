package constants

import "time"

const (
	SessionCookieName    = "society_session"
	SessionDefaultTTL    = 24 * time.Hour
	SessionPurgeSchedule = "@every 1m" // 内存会话的过期清理周期
	SessionContextUser   = "admin"     // echo.Context 中保存当前管理员的键
)
