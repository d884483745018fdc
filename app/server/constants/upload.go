package constants

const (
	UploadFormField       = "file"
	UploadDefaultMaxBytes = 10 << 20 // 10 MiB
	UploadMimePrefix      = "image/"
)
