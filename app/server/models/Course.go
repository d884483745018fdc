package models

import "time"

var CourseLevels = []string{"Beginner", "Intermediate", "Advanced"}

type Course struct {
	ID string `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`

	Title         string  `gorm:"column:title;not null" json:"title"`
	Instructor    string  `gorm:"column:instructor;not null" json:"instructor"`
	Duration      string  `gorm:"column:duration;not null" json:"duration"`
	Level         string  `gorm:"column:level;not null" json:"level"`
	Description   string  `gorm:"column:description;not null" json:"description"`
	EnrollmentURL *string `gorm:"column:enrollment_url" json:"enrollmentUrl"`

	Published bool `gorm:"column:published;not null;index" json:"published"`
	Order     int  `gorm:"column:order;not null;index" json:"order"`

	CreatedAt time.Time `gorm:"column:created_at;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updatedAt"`
}

func (Course) TableName() string {
	return "courses"
}

type CourseInput struct {
	Title         string  `json:"title" validate:"required"`
	Instructor    string  `json:"instructor" validate:"required"`
	Duration      string  `json:"duration" validate:"required"`
	Level         string  `json:"level" validate:"required,courselevel"`
	Description   string  `json:"description" validate:"required"`
	EnrollmentURL *string `json:"enrollmentUrl"`
	Published     bool    `json:"published"`
	Order         int     `json:"order"`
}

func (in *CourseInput) ToModel() Course {
	return Course{
		Title:         in.Title,
		Instructor:    in.Instructor,
		Duration:      in.Duration,
		Level:         in.Level,
		Description:   in.Description,
		EnrollmentURL: in.EnrollmentURL,
		Published:     in.Published,
		Order:         in.Order,
	}
}

type CoursePatch struct {
	Title         *string `json:"title" validate:"omitempty,min=1"`
	Instructor    *string `json:"instructor" validate:"omitempty,min=1"`
	Duration      *string `json:"duration" validate:"omitempty,min=1"`
	Level         *string `json:"level" validate:"omitempty,courselevel"`
	Description   *string `json:"description" validate:"omitempty,min=1"`
	EnrollmentURL *string `json:"enrollmentUrl"`
	Published     *bool   `json:"published"`
	Order         *int    `json:"order"`
}

func (p *CoursePatch) Apply(course *Course) {
	if p.Title != nil {
		course.Title = *p.Title
	}
	if p.Instructor != nil {
		course.Instructor = *p.Instructor
	}
	if p.Duration != nil {
		course.Duration = *p.Duration
	}
	if p.Level != nil {
		course.Level = *p.Level
	}
	if p.Description != nil {
		course.Description = *p.Description
	}
	if p.EnrollmentURL != nil {
		course.EnrollmentURL = p.EnrollmentURL
	}
	if p.Published != nil {
		course.Published = *p.Published
	}
	if p.Order != nil {
		course.Order = *p.Order
	}
}
