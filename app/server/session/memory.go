package session

import (
	"context"
	"fmt"
	"github.com/robfig/cron/v3"
	"society-cms/app/server/constants"
	"sync"
	"time"
)

type entry struct {
	adminID string
	expires time.Time
}

// Memory 单进程使用的会话存储，过期会话由定时任务清理
type Memory struct {
	mu       sync.Mutex
	sessions map[string]entry
	now      func() time.Time
	cron     *cron.Cron
}

func NewMemory() (*Memory, error) {
	m := &Memory{
		sessions: make(map[string]entry),
		now:      time.Now,
		cron:     cron.New(),
	}

	if _, err := m.cron.AddFunc(constants.SessionPurgeSchedule, m.purge); err != nil {
		return nil, fmt.Errorf("failed to schedule session purge: %w", err)
	}
	m.cron.Start()

	return m, nil
}

func (m *Memory) Create(_ context.Context, sid string, adminID string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sid] = entry{
		adminID: adminID,
		expires: m.now().Add(ttl),
	}
	return nil
}

func (m *Memory) Get(_ context.Context, sid string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.sessions[sid]
	if !ok {
		return "", ErrNotFound
	}
	if !m.now().Before(e.expires) {
		delete(m.sessions, sid)
		return "", ErrNotFound
	}
	return e.adminID, nil
}

func (m *Memory) Delete(_ context.Context, sid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sid)
	return nil
}

func (m *Memory) purge() {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	for sid, e := range m.sessions {
		if !now.Before(e.expires) {
			delete(m.sessions, sid)
		}
	}
}

// Close 停止清理任务，并等待正在执行的清理结束
func (m *Memory) Close() error {
	<-m.cron.Stop().Done()
	return nil
}
