package controllers

import (
	"context"
	"io"

	"github.com/gin-gonic/gin"

	"travelcms/dto"
	"travelcms/response"
	"travelcms/services/logger"
)

type MediaUploader interface {
	Upload(ctx context.Context, src io.Reader, folder string) (string, error)
}

type MediaController struct {
	media  MediaUploader
	logger logger.Logger
}

func NewMediaController(media MediaUploader, log logger.Logger) *MediaController {
	if log == nil {
		log = logger.Nop()
	}
	return &MediaController{media: media, logger: log}
}

// Upload stores the multipart "file" under the ?folder= folder
func (mc *MediaController) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "No file uploaded")
		return
	}
	src, err := file.Open()
	if err != nil {
		response.BadRequest(c, "Could not open the uploaded file")
		return
	}
	defer src.Close()

	url, err := mc.media.Upload(c.Request.Context(), src, c.Query("folder"))
	if err != nil {
		handleError(c, mc.logger, err)
		return
	}
	response.SuccessWithMessage(c, "Upload succeeded", dto.UploadResponse{URL: url})
}

// MultiUpload stores every multipart "files" entry in order
func (mc *MediaController) MultiUpload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.BadRequest(c, "No file uploaded")
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		response.BadRequest(c, "No file uploaded")
		return
	}

	urls := make([]string, 0, len(files))
	for _, file := range files {
		src, err := file.Open()
		if err != nil {
			response.BadRequest(c, "Could not open the uploaded file")
			return
		}
		url, err := mc.media.Upload(c.Request.Context(), src, c.Query("folder"))
		src.Close()
		if err != nil {
			handleError(c, mc.logger, err)
			return
		}
		urls = append(urls, url)
	}
	response.SuccessWithMessage(c, "Upload succeeded", dto.UploadResponse{URLs: urls})
}
