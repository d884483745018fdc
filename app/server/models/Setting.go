package models

import "time"

// 已知的设置项
const (
	SettingInductionFormVisible = "induction_form_visible" // "false" 时关闭公开的入会申请
)

type Setting struct {
	ID        string    `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	Key       string    `gorm:"column:key;not null;uniqueIndex" json:"key"`
	Value     string    `gorm:"column:value;not null" json:"value"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updatedAt"`
}

func (Setting) TableName() string {
	return "settings"
}

type SettingInput struct {
	Value string `json:"value" validate:"required"`
}
