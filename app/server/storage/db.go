package storage

import (
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"society-cms/app/server/models"
	"society-cms/app/server/utils"
)

// DB 基于 gorm 的 PostgreSQL 存储。
// 传入的 *gorm.DB 需要开启 TranslateError ，唯一键冲突才能识别为 ErrDuplicate 。
type DB struct {
	db *gorm.DB
}

func NewDB(db *gorm.DB) *DB {
	return &DB{db: db}
}

func (s *DB) Kind() string {
	return "postgres"
}

func (s *DB) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %w", ErrDuplicate, err)
	}
	return err
}

// eq 生成带引号的列条件，"order"、"key" 这类列名不会和关键字冲突
func eq(column string, value any) clause.Expression {
	return clause.Eq{Column: clause.Column{Name: column}, Value: value}
}

func asc(column string) clause.OrderByColumn {
	return clause.OrderByColumn{Column: clause.Column{Name: column}}
}

func desc(column string) clause.OrderByColumn {
	return clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: true}
}

var idAsc = asc("id")

// published 或 active 过滤，nil 表示不过滤
func boolFilter(column string, v *bool) []clause.Expression {
	if v == nil {
		return nil
	}
	return []clause.Expression{eq(column, *v)}
}

func first[T any](ctx context.Context, db *gorm.DB, conds ...clause.Expression) (*T, error) {
	var row T
	tx := db.WithContext(ctx)
	for _, cond := range conds {
		tx = tx.Where(cond)
	}
	if err := tx.First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func byID[T any](ctx context.Context, db *gorm.DB, id string) (*T, error) {
	return first[T](ctx, db, eq("id", id))
}

func find[T any](ctx context.Context, db *gorm.DB, conds []clause.Expression, order ...clause.OrderByColumn) ([]T, error) {
	rows := make([]T, 0)
	tx := db.WithContext(ctx).Model(new(T))
	for _, cond := range conds {
		tx = tx.Where(cond)
	}
	for _, o := range order {
		tx = tx.Order(o)
	}
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func create[T any](ctx context.Context, db *gorm.DB, row *T) (*T, error) {
	if err := db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, translate(err)
	}
	return row, nil
}

// update 在事务中读出记录、合并字段再整行写回。
// Select("*") 保证 false、0 这类零值也会写入。
func update[T any](ctx context.Context, db *gorm.DB, id string, apply func(*T) error) (*T, error) {
	var row T
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(eq("id", id)).First(&row).Error; err != nil {
			return err
		}
		if err := apply(&row); err != nil {
			return err
		}
		return tx.Model(&row).Select("*").Updates(&row).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, translate(err)
	}
	return &row, nil
}

func removeRow[T any](ctx context.Context, db *gorm.DB, id string) (bool, error) {
	res := db.WithContext(ctx).Where(eq("id", id)).Delete(new(T))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// 管理员

func (s *DB) GetAdminUser(ctx context.Context, id string) (*models.AdminUser, error) {
	return byID[models.AdminUser](ctx, s.db, id)
}

func (s *DB) GetAdminUserByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	return first[models.AdminUser](ctx, s.db, eq("username", username))
}

func (s *DB) GetAdminUserByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	return first[models.AdminUser](ctx, s.db, eq("email", email))
}

func (s *DB) ListAdminUsers(ctx context.Context) ([]models.AdminUser, error) {
	return find[models.AdminUser](ctx, s.db, nil, asc("created_at"), idAsc)
}

func (s *DB) CreateAdminUser(ctx context.Context, in models.AdminUserInput) (*models.AdminUser, error) {
	user := in.ToModel()
	user.ID = uuid.NewString()
	user.CreatedAt = utils.Now()
	user.UpdatedAt = user.CreatedAt
	return create(ctx, s.db, &user)
}

func (s *DB) UpdateAdminUser(ctx context.Context, id string, patch models.AdminUserPatch) (*models.AdminUser, error) {
	return update(ctx, s.db, id, func(user *models.AdminUser) error {
		patch.Apply(user)
		user.UpdatedAt = utils.Now()
		return nil
	})
}

func (s *DB) DeleteAdminUser(ctx context.Context, id string) (bool, error) {
	return removeRow[models.AdminUser](ctx, s.db, id)
}

// 入会申请

func (s *DB) GetInductionForm(ctx context.Context, id string) (*models.InductionForm, error) {
	return byID[models.InductionForm](ctx, s.db, id)
}

func (s *DB) ListInductionForms(ctx context.Context) ([]models.InductionForm, error) {
	return find[models.InductionForm](ctx, s.db, nil, desc("submitted_at"), idAsc)
}

func (s *DB) CreateInductionForm(ctx context.Context, in models.InductionFormInput) (*models.InductionForm, error) {
	form := in.ToModel()
	form.ID = uuid.NewString()
	form.SubmittedAt = utils.Now()
	return create(ctx, s.db, &form)
}

func (s *DB) UpdateInductionForm(ctx context.Context, id string, patch models.InductionFormPatch) (*models.InductionForm, error) {
	return update(ctx, s.db, id, func(form *models.InductionForm) error {
		patch.Apply(form)
		return nil
	})
}

func (s *DB) DeleteInductionForm(ctx context.Context, id string) (bool, error) {
	return removeRow[models.InductionForm](ctx, s.db, id)
}

// 设置

func (s *DB) GetSettingByKey(ctx context.Context, key string) (*models.Setting, error) {
	return first[models.Setting](ctx, s.db, eq("key", key))
}

func (s *DB) ListSettings(ctx context.Context) ([]models.Setting, error) {
	return find[models.Setting](ctx, s.db, nil, asc("key"), idAsc)
}

// UpsertSetting 依赖 key 上的唯一索引，冲突时只更新值和时间
func (s *DB) UpsertSetting(ctx context.Context, key string, value string) (*models.Setting, error) {
	setting := models.Setting{
		ID:        uuid.NewString(),
		Key:       key,
		Value:     value,
		UpdatedAt: utils.Now(),
	}
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error; err != nil {
		return nil, err
	}

	// 已存在时 id 不是刚生成的那个，重新读一次
	return s.GetSettingByKey(ctx, key)
}
