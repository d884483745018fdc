package models

import "time"

type Scholarship struct {
	ID string `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`

	Name           string  `gorm:"column:name;not null" json:"name"`
	Amount         string  `gorm:"column:amount;not null" json:"amount"`     // 展示文本，例如 "50% tuition"
	Criteria       string  `gorm:"column:criteria;not null" json:"criteria"` // 申请条件
	Deadline       string  `gorm:"column:deadline;not null" json:"deadline"` // 展示文本，不参与排序
	ApplicationURL *string `gorm:"column:application_url" json:"applicationUrl"`

	Published bool `gorm:"column:published;not null;index" json:"published"`
	Order     int  `gorm:"column:order;not null;index" json:"order"`

	CreatedAt time.Time `gorm:"column:created_at;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updatedAt"`
}

func (Scholarship) TableName() string {
	return "scholarships"
}

type ScholarshipInput struct {
	Name           string  `json:"name" validate:"required"`
	Amount         string  `json:"amount" validate:"required"`
	Criteria       string  `json:"criteria" validate:"required"`
	Deadline       string  `json:"deadline" validate:"required"`
	ApplicationURL *string `json:"applicationUrl"`
	Published      bool    `json:"published"`
	Order          int     `json:"order"`
}

func (in *ScholarshipInput) ToModel() Scholarship {
	return Scholarship{
		Name:           in.Name,
		Amount:         in.Amount,
		Criteria:       in.Criteria,
		Deadline:       in.Deadline,
		ApplicationURL: in.ApplicationURL,
		Published:      in.Published,
		Order:          in.Order,
	}
}

type ScholarshipPatch struct {
	Name           *string `json:"name" validate:"omitempty,min=1"`
	Amount         *string `json:"amount" validate:"omitempty,min=1"`
	Criteria       *string `json:"criteria" validate:"omitempty,min=1"`
	Deadline       *string `json:"deadline" validate:"omitempty,min=1"`
	ApplicationURL *string `json:"applicationUrl"`
	Published      *bool   `json:"published"`
	Order          *int    `json:"order"`
}

func (p *ScholarshipPatch) Apply(s *Scholarship) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Amount != nil {
		s.Amount = *p.Amount
	}
	if p.Criteria != nil {
		s.Criteria = *p.Criteria
	}
	if p.Deadline != nil {
		s.Deadline = *p.Deadline
	}
	if p.ApplicationURL != nil {
		s.ApplicationURL = p.ApplicationURL
	}
	if p.Published != nil {
		s.Published = *p.Published
	}
	if p.Order != nil {
		s.Order = *p.Order
	}
}
