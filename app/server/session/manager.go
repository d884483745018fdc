package session

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"net/http"
	"society-cms/app/server/constants"
	"society-cms/app/server/jwt"
	"time"
)

type Manager struct {
	store  Store
	jwt    *jwt.JWT
	ttl    time.Duration
	secure bool // 生产环境：Secure + SameSite=None ，允许跨站前端携带
	now    func() time.Time
}

func NewManager(store Store, j *jwt.JWT, ttl time.Duration, secure bool) *Manager {
	if ttl <= 0 {
		ttl = constants.SessionDefaultTTL
	}
	return &Manager{
		store:  store,
		jwt:    j,
		ttl:    ttl,
		secure: secure,
		now:    time.Now,
	}
}

// Start 为管理员创建新会话并写入 cookie
func (m *Manager) Start(c echo.Context, adminID string) error {
	sid := uuid.NewString()
	expires := m.now().Add(m.ttl)

	if err := m.store.Create(c.Request().Context(), sid, adminID, m.ttl); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	token, err := m.jwt.SignSession(&jwt.Session{
		ID:      sid,
		Expires: expires.Unix(),
	})
	if err != nil {
		return fmt.Errorf("failed to sign session: %w", err)
	}

	c.SetCookie(m.cookie(token, expires))
	return nil
}

// AdminID 从请求的 cookie 找到会话对应的管理员，没有有效会话时返回 ErrNotFound
func (m *Manager) AdminID(c echo.Context) (string, error) {
	sid, err := m.sessionID(c)
	if err != nil {
		return "", err
	}
	return m.store.Get(c.Request().Context(), sid)
}

// End 删除会话并清除 cookie ，没有会话时也会清除
func (m *Manager) End(c echo.Context) error {
	defer c.SetCookie(m.cookie("", time.Unix(0, 0)))

	sid, err := m.sessionID(c)
	if errors.Is(err, ErrNotFound) {
		return nil
	} else if err != nil {
		return err
	}
	return m.store.Delete(c.Request().Context(), sid)
}

func (m *Manager) sessionID(c echo.Context) (string, error) {
	cookie, err := c.Cookie(constants.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", ErrNotFound
	}

	// 签名无效或已过期都视为没有会话
	session, err := m.jwt.ParseSession(cookie.Value)
	if err != nil {
		return "", ErrNotFound
	}
	return session.ID, nil
}

func (m *Manager) cookie(value string, expires time.Time) *http.Cookie {
	cookie := &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
	if m.secure {
		cookie.SameSite = http.SameSiteNoneMode
	}
	if value == "" {
		cookie.MaxAge = -1
	} else {
		cookie.MaxAge = int(m.ttl.Seconds())
	}
	return cookie
}
