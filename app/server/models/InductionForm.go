package models

import (
	"github.com/lib/pq"
	"time"
)

const (
	InductionStatusPending  = "pending"
	InductionStatusApproved = "approved"
	InductionStatusRejected = "rejected"
)

var InductionStatuses = []string{
	InductionStatusPending,
	InductionStatusApproved,
	InductionStatusRejected,
}

// InductionForm 学生入会申请。表单本身是否开放由 SettingInductionFormVisible 控制。
type InductionForm struct {
	ID string `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`

	FullName   string         `gorm:"column:full_name;not null" json:"fullName"`
	Email      string         `gorm:"column:email;not null" json:"email"`
	Phone      string         `gorm:"column:phone;not null" json:"phone"`
	StudentID  string         `gorm:"column:student_id;not null" json:"studentId"`
	Department string         `gorm:"column:department;not null" json:"department"`
	Semester   string         `gorm:"column:semester;not null" json:"semester"`
	Interests  pq.StringArray `gorm:"column:interests;type:text[];not null" json:"interests"`
	Experience *string        `gorm:"column:experience" json:"experience"`
	Motivation string         `gorm:"column:motivation;not null" json:"motivation"`
	Status     string         `gorm:"column:status;not null;index" json:"status"` // pending, approved, rejected

	SubmittedAt time.Time `gorm:"column:submitted_at;not null;index" json:"submittedAt"`
}

func (InductionForm) TableName() string {
	return "induction_forms"
}

type InductionFormInput struct {
	FullName   string   `json:"fullName" validate:"required"`
	Email      string   `json:"email" validate:"required,email"`
	Phone      string   `json:"phone" validate:"required"`
	StudentID  string   `json:"studentId" validate:"required"`
	Department string   `json:"department" validate:"required"`
	Semester   string   `json:"semester" validate:"required"`
	Interests  []string `json:"interests" validate:"required,min=1,dive,required"`
	Experience *string  `json:"experience"`
	Motivation string   `json:"motivation" validate:"required,min=10"`
}

// ToModel 新提交的申请一律为 pending
func (in *InductionFormInput) ToModel() InductionForm {
	return InductionForm{
		FullName:   in.FullName,
		Email:      in.Email,
		Phone:      in.Phone,
		StudentID:  in.StudentID,
		Department: in.Department,
		Semester:   in.Semester,
		Interests:  pq.StringArray(append([]string(nil), in.Interests...)),
		Experience: in.Experience,
		Motivation: in.Motivation,
		Status:     InductionStatusPending,
	}
}

type InductionFormPatch struct {
	FullName   *string   `json:"fullName" validate:"omitempty,min=1"`
	Email      *string   `json:"email" validate:"omitempty,email"`
	Phone      *string   `json:"phone" validate:"omitempty,min=1"`
	StudentID  *string   `json:"studentId" validate:"omitempty,min=1"`
	Department *string   `json:"department" validate:"omitempty,min=1"`
	Semester   *string   `json:"semester" validate:"omitempty,min=1"`
	Interests  *[]string `json:"interests" validate:"omitempty,min=1,dive,required"`
	Experience *string   `json:"experience"`
	Motivation *string   `json:"motivation" validate:"omitempty,min=10"`
	Status     *string   `json:"status" validate:"omitempty,formstatus"`
}

func (p *InductionFormPatch) Apply(form *InductionForm) {
	if p.FullName != nil {
		form.FullName = *p.FullName
	}
	if p.Email != nil {
		form.Email = *p.Email
	}
	if p.Phone != nil {
		form.Phone = *p.Phone
	}
	if p.StudentID != nil {
		form.StudentID = *p.StudentID
	}
	if p.Department != nil {
		form.Department = *p.Department
	}
	if p.Semester != nil {
		form.Semester = *p.Semester
	}
	if p.Interests != nil {
		form.Interests = pq.StringArray(append([]string(nil), (*p.Interests)...))
	}
	if p.Experience != nil {
		form.Experience = p.Experience
	}
	if p.Motivation != nil {
		form.Motivation = *p.Motivation
	}
	if p.Status != nil {
		form.Status = *p.Status
	}
}
