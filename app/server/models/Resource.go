package models

import "time"

var (
	ResourceTypes      = []string{"Software", "Platform", "License", "PDF", "Video", "eBook", "Dataset", "Shapefile", "Raster"}
	ResourceCategories = []string{"Software & Tools", "Learning Materials", "Datasets"}
)

type Resource struct {
	ID string `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`

	Name        string `gorm:"column:name;not null" json:"name"`
	Description string `gorm:"column:description;not null" json:"description"`
	Type        string `gorm:"column:type;not null" json:"type"`
	Category    string `gorm:"column:category;not null" json:"category"`
	Link        string `gorm:"column:link;not null" json:"link"`

	Published bool `gorm:"column:published;not null;index" json:"published"`
	Order     int  `gorm:"column:order;not null;index" json:"order"`

	CreatedAt time.Time `gorm:"column:created_at;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updatedAt"`
}

func (Resource) TableName() string {
	return "resources"
}

type ResourceInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Type        string `json:"type" validate:"required,resourcetype"`
	Category    string `json:"category" validate:"required,resourcecategory"`
	Link        string `json:"link" validate:"required"`
	Published   bool   `json:"published"`
	Order       int    `json:"order"`
}

func (in *ResourceInput) ToModel() Resource {
	return Resource{
		Name:        in.Name,
		Description: in.Description,
		Type:        in.Type,
		Category:    in.Category,
		Link:        in.Link,
		Published:   in.Published,
		Order:       in.Order,
	}
}

type ResourcePatch struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	Type        *string `json:"type" validate:"omitempty,resourcetype"`
	Category    *string `json:"category" validate:"omitempty,resourcecategory"`
	Link        *string `json:"link" validate:"omitempty,min=1"`
	Published   *bool   `json:"published"`
	Order       *int    `json:"order"`
}

func (p *ResourcePatch) Apply(res *Resource) {
	if p.Name != nil {
		res.Name = *p.Name
	}
	if p.Description != nil {
		res.Description = *p.Description
	}
	if p.Type != nil {
		res.Type = *p.Type
	}
	if p.Category != nil {
		res.Category = *p.Category
	}
	if p.Link != nil {
		res.Link = *p.Link
	}
	if p.Published != nil {
		res.Published = *p.Published
	}
	if p.Order != nil {
		res.Order = *p.Order
	}
}
