package storage

import (
	"cmp"
	"context"
	"fmt"
	"github.com/google/uuid"
	"slices"
	"society-cms/app/server/models"
	"society-cms/app/server/utils"
	"strings"
	"sync"
	"time"
)

// Memory 进程内存储，重启后数据丢失。所有读写都会复制记录，调用方拿不到内部引用。
type Memory struct {
	mu  sync.RWMutex
	now func() time.Time

	adminUsers   map[string]models.AdminUser
	news         map[string]models.News
	events       map[string]models.Event
	publications map[string]models.Publication
	leadership   map[string]models.Leadership
	gallery      map[string]models.Gallery
	forms        map[string]models.InductionForm
	settings     map[string]models.Setting // 以 key 为索引
	resources    map[string]models.Resource
	courses      map[string]models.Course
	scholarships map[string]models.Scholarship
}

func NewMemory() *Memory {
	return &Memory{
		now: utils.Now,

		adminUsers:   make(map[string]models.AdminUser),
		news:         make(map[string]models.News),
		events:       make(map[string]models.Event),
		publications: make(map[string]models.Publication),
		leadership:   make(map[string]models.Leadership),
		gallery:      make(map[string]models.Gallery),
		forms:        make(map[string]models.InductionForm),
		settings:     make(map[string]models.Setting),
		resources:    make(map[string]models.Resource),
		courses:      make(map[string]models.Course),
		scholarships: make(map[string]models.Scholarship),
	}
}

func (s *Memory) Kind() string {
	return "memory"
}

func (s *Memory) Close() error {
	return nil
}

// get 取出一条记录的副本
func get[T any](rows map[string]T, id string, clone func(T) T) *T {
	row, ok := rows[id]
	if !ok {
		return nil
	}
	row = clone(row)
	return &row
}

// list 过滤后排序，返回副本
func list[T any](rows map[string]T, keep func(*T) bool, compare func(a, b *T) int, clone func(T) T) []T {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if keep != nil && !keep(&row) {
			continue
		}
		out = append(out, clone(row))
	}
	slices.SortFunc(out, func(a, b T) int {
		return compare(&a, &b)
	})
	return out
}

func remove[T any](rows map[string]T, id string) bool {
	if _, ok := rows[id]; !ok {
		return false
	}
	delete(rows, id)
	return true
}

func matchBool(filter *bool, v bool) bool {
	return filter == nil || *filter == v
}

// 排序工具：主键相同时按 id 升序
func byTimeDesc(a, b time.Time, aID, bID string) int {
	return cmp.Or(b.Compare(a), strings.Compare(aID, bID))
}

func byTimeAsc(a, b time.Time, aID, bID string) int {
	return cmp.Or(a.Compare(b), strings.Compare(aID, bID))
}

func byOrderAsc(a, b int, aID, bID string) int {
	return cmp.Or(cmp.Compare(a, b), strings.Compare(aID, bID))
}

// 管理员

func (s *Memory) GetAdminUser(_ context.Context, id string) (*models.AdminUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return get(s.adminUsers, id, cloneAdminUser), nil
}

func (s *Memory) findAdminUser(match func(*models.AdminUser) bool) *models.AdminUser {
	for _, user := range s.adminUsers {
		if match(&user) {
			user = cloneAdminUser(user)
			return &user
		}
	}
	return nil
}

func (s *Memory) GetAdminUserByUsername(_ context.Context, username string) (*models.AdminUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findAdminUser(func(u *models.AdminUser) bool { return u.Username == username }), nil
}

func (s *Memory) GetAdminUserByEmail(_ context.Context, email string) (*models.AdminUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findAdminUser(func(u *models.AdminUser) bool { return u.Email == email }), nil
}

func (s *Memory) ListAdminUsers(_ context.Context) ([]models.AdminUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return list(s.adminUsers, nil, func(a, b *models.AdminUser) int {
		return byTimeAsc(a.CreatedAt, b.CreatedAt, a.ID, b.ID)
	}, cloneAdminUser), nil
}

// checkAdminUnique 与数据库的唯一索引保持一致
func (s *Memory) checkAdminUnique(user *models.AdminUser) error {
	for id, other := range s.adminUsers {
		if id == user.ID {
			continue
		}
		if other.Username == user.Username {
			return fmt.Errorf("username %q: %w", user.Username, ErrDuplicate)
		}
		if other.Email == user.Email {
			return fmt.Errorf("email %q: %w", user.Email, ErrDuplicate)
		}
	}
	return nil
}

func (s *Memory) CreateAdminUser(_ context.Context, in models.AdminUserInput) (*models.AdminUser, error) {
	user := in.ToModel()
	user.ID = uuid.NewString()
	user.CreatedAt = s.now()
	user.UpdatedAt = user.CreatedAt

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkAdminUnique(&user); err != nil {
		return nil, err
	}
	s.adminUsers[user.ID] = user
	return get(s.adminUsers, user.ID, cloneAdminUser), nil
}

func (s *Memory) UpdateAdminUser(_ context.Context, id string, patch models.AdminUserPatch) (*models.AdminUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.adminUsers[id]
	if !ok {
		return nil, nil
	}
	patch.Apply(&user)
	user.UpdatedAt = s.now()
	if err := s.checkAdminUnique(&user); err != nil {
		return nil, err
	}
	s.adminUsers[id] = cloneAdminUser(user)
	return get(s.adminUsers, id, cloneAdminUser), nil
}

func (s *Memory) DeleteAdminUser(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return remove(s.adminUsers, id), nil
}

// 入会申请

func (s *Memory) GetInductionForm(_ context.Context, id string) (*models.InductionForm, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return get(s.forms, id, cloneInductionForm), nil
}

func (s *Memory) ListInductionForms(_ context.Context) ([]models.InductionForm, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return list(s.forms, nil, func(a, b *models.InductionForm) int {
		return byTimeDesc(a.SubmittedAt, b.SubmittedAt, a.ID, b.ID)
	}, cloneInductionForm), nil
}

func (s *Memory) CreateInductionForm(_ context.Context, in models.InductionFormInput) (*models.InductionForm, error) {
	form := cloneInductionForm(in.ToModel())
	form.ID = uuid.NewString()
	form.SubmittedAt = s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.forms[form.ID] = form
	return get(s.forms, form.ID, cloneInductionForm), nil
}

func (s *Memory) UpdateInductionForm(_ context.Context, id string, patch models.InductionFormPatch) (*models.InductionForm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	form, ok := s.forms[id]
	if !ok {
		return nil, nil
	}
	patch.Apply(&form)
	s.forms[id] = cloneInductionForm(form)
	return get(s.forms, id, cloneInductionForm), nil
}

func (s *Memory) DeleteInductionForm(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return remove(s.forms, id), nil
}

// 设置

func (s *Memory) GetSettingByKey(_ context.Context, key string) (*models.Setting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	setting, ok := s.settings[key]
	if !ok {
		return nil, nil
	}
	return &setting, nil
}

func (s *Memory) ListSettings(_ context.Context) ([]models.Setting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return list(s.settings, nil, func(a, b *models.Setting) int {
		return cmp.Or(strings.Compare(a.Key, b.Key), strings.Compare(a.ID, b.ID))
	}, func(v models.Setting) models.Setting { return v }), nil
}

func (s *Memory) UpsertSetting(_ context.Context, key string, value string) (*models.Setting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	setting, ok := s.settings[key]
	if !ok {
		setting = models.Setting{
			ID:  uuid.NewString(),
			Key: key,
		}
	}
	setting.Value = value
	setting.UpdatedAt = s.now()
	s.settings[key] = setting
	return &setting, nil
}
