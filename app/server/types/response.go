package types

import (
	"society-cms/app/server/models"
	"society-cms/app/server/validation"
)

type ErrorMessage struct {
	Error   string                  `json:"error"`
	Details []validation.FieldError `json:"details,omitempty"`
}

type SuccessMessage struct {
	Success bool `json:"success"`
}

type UploadResult struct {
	URL          string `json:"url"` // data URL ，可以直接存入 imageUrl
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
	MimeType     string `json:"mimeType"`
}

type UserResponse struct {
	User *models.AdminUser `json:"user"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}
