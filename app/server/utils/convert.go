package utils

import (
	"fmt"
	"strings"
	"time"
)

func P[T any](v T) *T {
	return &v
}

// 前端会传来几种不同精度的日期字符串，统一转换为 UTC 时间
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date format: %q", s)
}

// Now 返回与 PostgreSQL timestamp 精度一致的当前时间
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
