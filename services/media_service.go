package services

import (
	"context"
	"io"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"travelcms/errors"
	"travelcms/services/logger"
	"travelcms/services/metrics"
)

// Upload folders accepted from admin clients
var MediaFolders = map[string]bool{
	"uploads":     true,
	"packages":    true,
	"itineraries": true,
	"hero":        true,
	"geography":   true,
}

const DefaultMediaFolder = "uploads"

// ImageUploader is satisfied by *uploader.API
type ImageUploader interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
}

type MediaService struct {
	uploader ImageUploader
	logger   logger.Logger
}

func NewMediaService(up ImageUploader, log logger.Logger) *MediaService {
	if log == nil {
		log = logger.Nop()
	}
	return &MediaService{uploader: up, logger: log}
}

// Folder returns folder when it is allowed, else the default one
func (s *MediaService) Folder(folder string) string {
	if MediaFolders[folder] {
		return folder
	}
	return DefaultMediaFolder
}

// Upload stores one image and returns its secure URL
func (s *MediaService) Upload(ctx context.Context, src io.Reader, folder string) (string, error) {
	if s == nil || s.uploader == nil {
		return "", errors.NewAppError(errors.ErrCodeUploadFailed, "Image storage is not configured", nil)
	}
	start := time.Now()
	resp, err := s.uploader.Upload(ctx, src, uploader.UploadParams{Folder: s.Folder(folder)})
	if err == nil && resp != nil && resp.Error.Message != "" {
		err = errors.NewAppError(errors.ErrCodeUploadFailed, resp.Error.Message, nil)
	}
	status := 200
	if err != nil {
		status = 0
	}
	metrics.ObserveExternal("cloudinary", "upload", status, time.Since(start))
	if err != nil {
		s.logger.Error("cloudinary upload failed: %v", err)
		return "", errors.NewAppError(errors.ErrCodeUploadFailed, "Upload failed", err)
	}
	return resp.SecureURL, nil
}

// UploadMany uploads every source in order and stops at the first failure
func (s *MediaService) UploadMany(ctx context.Context, srcs []io.Reader, folder string) ([]string, error) {
	urls := make([]string, 0, len(srcs))
	for _, src := range srcs {
		url, err := s.Upload(ctx, src, folder)
		if err != nil {
			return urls, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}
