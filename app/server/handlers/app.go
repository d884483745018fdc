package handlers

import (
	"go.uber.org/zap"
	"society-cms/app/server/session"
	"society-cms/app/server/storage"
	"society-cms/app/server/validation"
)

type App struct {
	l  *zap.Logger            // 日志
	st storage.Storage        // 存储，启动时选定后不再改变
	sm *session.Manager       // 登录会话
	v  *validation.Validator // 请求体校验

	uploadMax int64 // 上传图片的大小上限
}

func NewApp(l *zap.Logger, st storage.Storage, sm *session.Manager, v *validation.Validator, uploadMax int64) *App {
	return &App{
		l:         l,
		st:        st,
		sm:        sm,
		v:         v,
		uploadMax: uploadMax,
	}
}
