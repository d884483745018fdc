package models

import (
	"github.com/lib/pq"
	"time"
)

type Leadership struct {
	ID string `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`

	Name       string `gorm:"column:name;not null" json:"name"`
	Title      string `gorm:"column:title;not null" json:"title"`
	Role       string `gorm:"column:role;not null" json:"role"`
	Department string `gorm:"column:department;not null" json:"department"`
	Bio        string `gorm:"column:bio;not null" json:"bio"`

	Email    *string `gorm:"column:email" json:"email"`
	LinkedIn *string `gorm:"column:linkedin" json:"linkedin"`
	Website  *string `gorm:"column:website" json:"website"`
	PhotoURL *string `gorm:"column:photo_url" json:"photoUrl"`

	Expertise pq.StringArray `gorm:"column:expertise;type:text[];not null" json:"expertise"`
	Order     int            `gorm:"column:order;not null;index" json:"order"` // 展示顺序，升序
	Active    bool           `gorm:"column:active;not null;index" json:"active"`

	CreatedAt time.Time `gorm:"column:created_at;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updatedAt"`
}

func (Leadership) TableName() string {
	return "leadership"
}

type LeadershipInput struct {
	Name       string   `json:"name" validate:"required"`
	Title      string   `json:"title" validate:"required"`
	Role       string   `json:"role" validate:"required"`
	Department string   `json:"department" validate:"required"`
	Bio        string   `json:"bio" validate:"required"`
	Email      *string  `json:"email"`
	LinkedIn   *string  `json:"linkedin"`
	Website    *string  `json:"website"`
	PhotoURL   *string  `json:"photoUrl"`
	Expertise  []string `json:"expertise" validate:"required,min=1,dive,required"`
	Order      int      `json:"order"`
	Active     *bool    `json:"active"`
}

func (in *LeadershipInput) ToModel() Leadership {
	member := Leadership{
		Name:       in.Name,
		Title:      in.Title,
		Role:       in.Role,
		Department: in.Department,
		Bio:        in.Bio,
		Email:      in.Email,
		LinkedIn:   in.LinkedIn,
		Website:    in.Website,
		PhotoURL:   in.PhotoURL,
		Expertise:  pq.StringArray(append([]string(nil), in.Expertise...)),
		Order:      in.Order,
		Active:     true, // 默认在任
	}
	if in.Active != nil {
		member.Active = *in.Active
	}
	return member
}

type LeadershipPatch struct {
	Name       *string   `json:"name" validate:"omitempty,min=1"`
	Title      *string   `json:"title" validate:"omitempty,min=1"`
	Role       *string   `json:"role" validate:"omitempty,min=1"`
	Department *string   `json:"department" validate:"omitempty,min=1"`
	Bio        *string   `json:"bio" validate:"omitempty,min=1"`
	Email      *string   `json:"email"`
	LinkedIn   *string   `json:"linkedin"`
	Website    *string   `json:"website"`
	PhotoURL   *string   `json:"photoUrl"`
	Expertise  *[]string `json:"expertise" validate:"omitempty,min=1,dive,required"`
	Order      *int      `json:"order"`
	Active     *bool     `json:"active"`
}

func (p *LeadershipPatch) Apply(member *Leadership) {
	if p.Name != nil {
		member.Name = *p.Name
	}
	if p.Title != nil {
		member.Title = *p.Title
	}
	if p.Role != nil {
		member.Role = *p.Role
	}
	if p.Department != nil {
		member.Department = *p.Department
	}
	if p.Bio != nil {
		member.Bio = *p.Bio
	}
	if p.Email != nil {
		member.Email = p.Email
	}
	if p.LinkedIn != nil {
		member.LinkedIn = p.LinkedIn
	}
	if p.Website != nil {
		member.Website = p.Website
	}
	if p.PhotoURL != nil {
		member.PhotoURL = p.PhotoURL
	}
	if p.Expertise != nil {
		member.Expertise = pq.StringArray(append([]string(nil), (*p.Expertise)...))
	}
	if p.Order != nil {
		member.Order = *p.Order
	}
	if p.Active != nil {
		member.Active = *p.Active
	}
}
