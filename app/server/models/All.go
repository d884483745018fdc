package models

// All 需要自动迁移的全部模型
func All() []any {
	return []any{
		&AdminUser{},
		&News{},
		&Event{},
		&Publication{},
		&Leadership{},
		&Gallery{},
		&InductionForm{},
		&Setting{},
		&Resource{},
		&Course{},
		&Scholarship{},
	}
}
