package models

import "time"

type AdminUser struct {
	ID string `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`

	// 基础信息
	Username string `gorm:"column:username;not null;uniqueIndex" json:"username"` // 用户名，全局唯一
	Email    string `gorm:"column:email;not null;uniqueIndex" json:"email"`       // 邮箱，全局唯一
	Role     string `gorm:"column:role;not null" json:"role"`
	IsActive bool   `gorm:"column:is_active;not null" json:"isActive"` // 停用的账号无法登录

	// 密码，使用 argon2id 储存，永远不会序列化输出
	Password string `gorm:"column:password;not null" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updatedAt"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}

const DefaultAdminRole = "admin"

// AdminUserInput 创建管理员。到达存储层时 Password 已经是 argon2id 哈希。
type AdminUserInput struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"omitempty,min=1"`
	IsActive *bool  `json:"isActive"`
}

func (in *AdminUserInput) ToModel() AdminUser {
	user := AdminUser{
		Username: in.Username,
		Password: in.Password,
		Email:    in.Email,
		Role:     in.Role,
		IsActive: true,
	}
	if user.Role == "" {
		user.Role = DefaultAdminRole
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	return user
}

type AdminUserPatch struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=64"`
	Password *string `json:"password" validate:"omitempty,min=8"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Role     *string `json:"role" validate:"omitempty,min=1"`
	IsActive *bool   `json:"isActive"`
}

func (p *AdminUserPatch) Apply(user *AdminUser) {
	if p.Username != nil {
		user.Username = *p.Username
	}
	if p.Password != nil {
		user.Password = *p.Password
	}
	if p.Email != nil {
		user.Email = *p.Email
	}
	if p.Role != nil {
		user.Role = *p.Role
	}
	if p.IsActive != nil {
		user.IsActive = *p.IsActive
	}
}
