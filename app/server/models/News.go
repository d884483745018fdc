package models

import "time"

type News struct {
	ID string `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`

	Title    string  `gorm:"column:title;not null" json:"title"`
	Excerpt  string  `gorm:"column:excerpt;not null" json:"excerpt"`
	Content  string  `gorm:"column:content;not null" json:"content"`
	Category string  `gorm:"column:category;not null" json:"category"`
	ImageURL *string `gorm:"column:image_url" json:"imageUrl"`
	AuthorID *string `gorm:"column:author_id;type:varchar(36)" json:"authorId"` // 发布者（管理员）

	Featured  bool `gorm:"column:featured;not null;index" json:"featured"`
	Published bool `gorm:"column:published;not null;index" json:"published"`

	CreatedAt   time.Time  `gorm:"column:created_at;not null;index" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;not null" json:"updatedAt"`
	PublishedAt *time.Time `gorm:"column:published_at" json:"publishedAt"` // 第一次发布的时间，之后不再变化
}

func (News) TableName() string {
	return "news"
}

type NewsInput struct {
	Title     string  `json:"title" validate:"required"`
	Excerpt   string  `json:"excerpt" validate:"required"`
	Content   string  `json:"content" validate:"required"`
	Category  string  `json:"category" validate:"required"`
	ImageURL  *string `json:"imageUrl"`
	Featured  bool    `json:"featured"`
	Published bool    `json:"published"`
}

func (in *NewsInput) ToModel() News {
	return News{
		Title:     in.Title,
		Excerpt:   in.Excerpt,
		Content:   in.Content,
		Category:  in.Category,
		ImageURL:  in.ImageURL,
		Featured:  in.Featured,
		Published: in.Published,
	}
}

type NewsPatch struct {
	Title     *string `json:"title" validate:"omitempty,min=1"`
	Excerpt   *string `json:"excerpt" validate:"omitempty,min=1"`
	Content   *string `json:"content" validate:"omitempty,min=1"`
	Category  *string `json:"category" validate:"omitempty,min=1"`
	ImageURL  *string `json:"imageUrl"`
	Featured  *bool   `json:"featured"`
	Published *bool   `json:"published"`
}

// Apply 合并字段。首次发布时记录 publishedAt ，之后取消发布、重新发布都保留原值。
func (p *NewsPatch) Apply(news *News, now time.Time) {
	if p.Title != nil {
		news.Title = *p.Title
	}
	if p.Excerpt != nil {
		news.Excerpt = *p.Excerpt
	}
	if p.Content != nil {
		news.Content = *p.Content
	}
	if p.Category != nil {
		news.Category = *p.Category
	}
	if p.ImageURL != nil {
		news.ImageURL = p.ImageURL
	}
	if p.Featured != nil {
		news.Featured = *p.Featured
	}
	if p.Published != nil {
		news.Published = *p.Published
	}
	news.StampPublished(now)
}

// StampPublished 在记录处于发布状态且从未发布过时写入 publishedAt
func (n *News) StampPublished(now time.Time) {
	if n.Published && n.PublishedAt == nil {
		t := now
		n.PublishedAt = &t
	}
}
