package models

import (
	"fmt"
	"society-cms/app/server/utils"
	"time"
)

type Event struct {
	ID string `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`

	Title       string     `gorm:"column:title;not null" json:"title"`
	Description string     `gorm:"column:description;not null" json:"description"`
	Type        string     `gorm:"column:type;not null" json:"type"` // workshop, seminar, conference, webinar
	Date        time.Time  `gorm:"column:date;not null;index" json:"date"`
	EndDate     *time.Time `gorm:"column:end_date" json:"endDate"`
	Time        string     `gorm:"column:time;not null" json:"time"` // 展示用的时间段文本，例如 "10:00 - 12:00"
	Location    string     `gorm:"column:location;not null" json:"location"`

	Capacity   *int `gorm:"column:capacity" json:"capacity"`
	Registered int  `gorm:"column:registered;not null" json:"registered"` // 没有任何写入路径会自增

	Published       bool    `gorm:"column:published;not null;index" json:"published"`
	ImageURL        *string `gorm:"column:image_url" json:"imageUrl"`
	RegistrationURL *string `gorm:"column:registration_url" json:"registrationUrl"`

	CreatedAt time.Time `gorm:"column:created_at;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updatedAt"`
}

func (Event) TableName() string {
	return "events"
}

type EventInput struct {
	Title           string  `json:"title" validate:"required"`
	Description     string  `json:"description" validate:"required"`
	Type            string  `json:"type" validate:"required"`
	Date            string  `json:"date" validate:"required,isodate"`
	EndDate         *string `json:"endDate" validate:"omitempty,isodate"`
	Time            string  `json:"time" validate:"required"`
	Location        string  `json:"location" validate:"required"`
	Capacity        *int    `json:"capacity" validate:"omitempty,gte=0"`
	Published       bool    `json:"published"`
	ImageURL        *string `json:"imageUrl"`
	RegistrationURL *string `json:"registrationUrl"`
}

func (in *EventInput) ToModel() (Event, error) {
	date, err := utils.ParseDate(in.Date)
	if err != nil {
		return Event{}, fmt.Errorf("parse date: %w", err)
	}

	event := Event{
		Title:           in.Title,
		Description:     in.Description,
		Type:            in.Type,
		Date:            date,
		Time:            in.Time,
		Location:        in.Location,
		Capacity:        in.Capacity,
		Published:       in.Published,
		ImageURL:        in.ImageURL,
		RegistrationURL: in.RegistrationURL,
	}

	if in.EndDate != nil && *in.EndDate != "" {
		endDate, err := utils.ParseDate(*in.EndDate)
		if err != nil {
			return Event{}, fmt.Errorf("parse end date: %w", err)
		}
		event.EndDate = &endDate
	}

	return event, nil
}

type EventPatch struct {
	Title           *string `json:"title" validate:"omitempty,min=1"`
	Description     *string `json:"description" validate:"omitempty,min=1"`
	Type            *string `json:"type" validate:"omitempty,min=1"`
	Date            *string `json:"date" validate:"omitempty,min=1,isodate"`
	EndDate         *string `json:"endDate" validate:"omitempty,isodate"`
	Time            *string `json:"time" validate:"omitempty,min=1"`
	Location        *string `json:"location" validate:"omitempty,min=1"`
	Capacity        *int    `json:"capacity" validate:"omitempty,gte=0"`
	Published       *bool   `json:"published"`
	ImageURL        *string `json:"imageUrl"`
	RegistrationURL *string `json:"registrationUrl"`
}

func (p *EventPatch) Apply(event *Event) error {
	if p.Date != nil {
		date, err := utils.ParseDate(*p.Date)
		if err != nil {
			return fmt.Errorf("parse date: %w", err)
		}
		event.Date = date
	}
	if p.EndDate != nil && *p.EndDate == "" {
		// 空字符串表示清除结束时间
		event.EndDate = nil
	} else if p.EndDate != nil {
		endDate, err := utils.ParseDate(*p.EndDate)
		if err != nil {
			return fmt.Errorf("parse end date: %w", err)
		}
		event.EndDate = &endDate
	}

	if p.Title != nil {
		event.Title = *p.Title
	}
	if p.Description != nil {
		event.Description = *p.Description
	}
	if p.Type != nil {
		event.Type = *p.Type
	}
	if p.Time != nil {
		event.Time = *p.Time
	}
	if p.Location != nil {
		event.Location = *p.Location
	}
	if p.Capacity != nil {
		event.Capacity = p.Capacity
	}
	if p.Published != nil {
		event.Published = *p.Published
	}
	if p.ImageURL != nil {
		event.ImageURL = p.ImageURL
	}
	if p.RegistrationURL != nil {
		event.RegistrationURL = p.RegistrationURL
	}
	return nil
}
