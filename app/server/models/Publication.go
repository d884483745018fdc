package models

import (
	"fmt"
	"github.com/lib/pq"
	"society-cms/app/server/utils"
	"time"
)

type Publication struct {
	ID string `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`

	Title    string         `gorm:"column:title;not null" json:"title"`
	Authors  pq.StringArray `gorm:"column:authors;type:text[];not null" json:"authors"` // 作者，保持顺序
	Journal  string         `gorm:"column:journal;not null" json:"journal"`
	Abstract string         `gorm:"column:abstract;not null" json:"abstract"`
	Type     string         `gorm:"column:type;not null;index" json:"type"` // journal, conference, report, newsletter
	Date     time.Time      `gorm:"column:date;not null;index" json:"date"`

	Published   bool    `gorm:"column:published;not null;index" json:"published"`
	CoverURL    *string `gorm:"column:cover_url" json:"coverUrl"`
	DownloadURL *string `gorm:"column:download_url" json:"downloadUrl"`
	ExternalURL *string `gorm:"column:external_url" json:"externalUrl"`
	DOI         *string `gorm:"column:doi" json:"doi"`

	CreatedAt time.Time `gorm:"column:created_at;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updatedAt"`
}

func (Publication) TableName() string {
	return "publications"
}

type PublicationInput struct {
	Title       string   `json:"title" validate:"required"`
	Authors     []string `json:"authors" validate:"required,min=1,dive,required"`
	Journal     string   `json:"journal" validate:"required"`
	Abstract    string   `json:"abstract" validate:"required"`
	Type        string   `json:"type" validate:"required"`
	Date        string   `json:"date" validate:"required,isodate"`
	Published   bool     `json:"published"`
	CoverURL    *string  `json:"coverUrl"`
	DownloadURL *string  `json:"downloadUrl"`
	ExternalURL *string  `json:"externalUrl"`
	DOI         *string  `json:"doi"`
}

func (in *PublicationInput) ToModel() (Publication, error) {
	date, err := utils.ParseDate(in.Date)
	if err != nil {
		return Publication{}, fmt.Errorf("parse date: %w", err)
	}

	return Publication{
		Title:       in.Title,
		Authors:     pq.StringArray(append([]string(nil), in.Authors...)),
		Journal:     in.Journal,
		Abstract:    in.Abstract,
		Type:        in.Type,
		Date:        date,
		Published:   in.Published,
		CoverURL:    in.CoverURL,
		DownloadURL: in.DownloadURL,
		ExternalURL: in.ExternalURL,
		DOI:         in.DOI,
	}, nil
}

type PublicationPatch struct {
	Title       *string   `json:"title" validate:"omitempty,min=1"`
	Authors     *[]string `json:"authors" validate:"omitempty,min=1,dive,required"`
	Journal     *string   `json:"journal" validate:"omitempty,min=1"`
	Abstract    *string   `json:"abstract" validate:"omitempty,min=1"`
	Type        *string   `json:"type" validate:"omitempty,min=1"`
	Date        *string   `json:"date" validate:"omitempty,min=1,isodate"`
	Published   *bool     `json:"published"`
	CoverURL    *string   `json:"coverUrl"`
	DownloadURL *string   `json:"downloadUrl"`
	ExternalURL *string   `json:"externalUrl"`
	DOI         *string   `json:"doi"`
}

func (p *PublicationPatch) Apply(pub *Publication) error {
	if p.Date != nil {
		date, err := utils.ParseDate(*p.Date)
		if err != nil {
			return fmt.Errorf("parse date: %w", err)
		}
		pub.Date = date
	}

	if p.Title != nil {
		pub.Title = *p.Title
	}
	if p.Authors != nil {
		pub.Authors = pq.StringArray(append([]string(nil), (*p.Authors)...))
	}
	if p.Journal != nil {
		pub.Journal = *p.Journal
	}
	if p.Abstract != nil {
		pub.Abstract = *p.Abstract
	}
	if p.Type != nil {
		pub.Type = *p.Type
	}
	if p.Published != nil {
		pub.Published = *p.Published
	}
	if p.CoverURL != nil {
		pub.CoverURL = p.CoverURL
	}
	if p.DownloadURL != nil {
		pub.DownloadURL = p.DownloadURL
	}
	if p.ExternalURL != nil {
		pub.ExternalURL = p.ExternalURL
	}
	if p.DOI != nil {
		pub.DOI = p.DOI
	}
	return nil
}
