package constants

import "time"

const (
	CacheKeySetting = "society:setting:%s"
	CacheKeySession = "society:session:%s"
)

const (
	CacheExpireSetting = 1 * time.Hour
)
