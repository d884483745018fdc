package models

import "time"

type Gallery struct {
	ID string `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`

	Title       string  `gorm:"column:title;not null" json:"title"`
	Description *string `gorm:"column:description" json:"description"`
	ImageURL    string  `gorm:"column:image_url;not null" json:"imageUrl"` // 一般是上传接口返回的 data URL
	Category    string  `gorm:"column:category;not null;index" json:"category"`
	EventID     *string `gorm:"column:event_id;type:varchar(36)" json:"eventId"` // 关联的活动，不做存在性校验
	Published   bool    `gorm:"column:published;not null;index" json:"published"`

	UploadedAt time.Time `gorm:"column:uploaded_at;not null;index" json:"uploadedAt"`
}

func (Gallery) TableName() string {
	return "gallery"
}

type GalleryInput struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	ImageURL    string  `json:"imageUrl" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	EventID     *string `json:"eventId"`
	Published   bool    `json:"published"`
}

func (in *GalleryInput) ToModel() Gallery {
	return Gallery{
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Category:    in.Category,
		EventID:     in.EventID,
		Published:   in.Published,
	}
}

type GalleryPatch struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,min=1"`
	Category    *string `json:"category" validate:"omitempty,min=1"`
	EventID     *string `json:"eventId"`
	Published   *bool   `json:"published"`
}

func (p *GalleryPatch) Apply(image *Gallery) {
	if p.Title != nil {
		image.Title = *p.Title
	}
	if p.Description != nil {
		image.Description = p.Description
	}
	if p.ImageURL != nil {
		image.ImageURL = *p.ImageURL
	}
	if p.Category != nil {
		image.Category = *p.Category
	}
	if p.EventID != nil {
		image.EventID = p.EventID
	}
	if p.Published != nil {
		image.Published = *p.Published
	}
}
