package handlers

import (
	"encoding/base64"
	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"society-cms/app/server/constants"
	"society-cms/app/server/types"
	"strings"
)

// UploadImage 把图片转成 data URL 返回，不落盘
func (a *App) UploadImage(c echo.Context) error {
	fh, err := c.FormFile(constants.UploadFormField)
	if err != nil {
		return a.erMsg(c, http.StatusBadRequest, "No file provided")
	}

	if fh.Size > a.uploadMax {
		return a.erMsg(c, http.StatusBadRequest, "File too large")
	}

	// 声明的类型
	declared, _, err := mime.ParseMediaType(fh.Header.Get(echo.HeaderContentType))
	if err != nil || !strings.HasPrefix(declared, constants.UploadMimePrefix) {
		return a.erMsg(c, http.StatusBadRequest, "Only image files are allowed")
	}

	f, err := fh.Open()
	if err != nil {
		return a.ise(c, err, "failed to open uploaded file")
	}
	defer f.Close()

	// 多读一个字节用于判断是否超出上限
	data, err := io.ReadAll(io.LimitReader(f, a.uploadMax+1))
	if err != nil {
		return a.ise(c, err, "failed to read uploaded file")
	} else if int64(len(data)) > a.uploadMax {
		return a.erMsg(c, http.StatusBadRequest, "File too large")
	}

	// 实际内容也必须是图片
	detected := mimetype.Detect(data)
	if !strings.HasPrefix(detected.String(), constants.UploadMimePrefix) {
		a.l.Debug("rejected upload with mismatched content",
			zap.String("declared", declared),
			zap.String("detected", detected.String()),
		)
		return a.erMsg(c, http.StatusBadRequest, "Only image files are allowed")
	}

	name := filepath.Base(fh.Filename)
	return c.JSON(http.StatusOK, &types.UploadResult{
		URL:          "data:" + declared + ";base64," + base64.StdEncoding.EncodeToString(data),
		Filename:     name,
		OriginalName: fh.Filename,
		Size:         int64(len(data)),
		MimeType:     declared,
	})
}
