package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"travelcms/errors"
	"travelcms/response"
	"travelcms/services/logger"
)

var statusByCode = map[errors.ErrorCode]int{
	errors.ErrCodeNotFound:        http.StatusNotFound,
	errors.ErrCodeDBNotFound:      http.StatusNotFound,
	errors.ErrCodeDBDuplicate:     http.StatusConflict,
	errors.ErrCodeSingleton:       http.StatusConflict,
	errors.ErrCodeParentNotFound:  http.StatusBadRequest,
	errors.ErrCodeValidation:      http.StatusBadRequest,
	errors.ErrCodeRequiredField:   http.StatusBadRequest,
	errors.ErrCodeInvalidFormat:   http.StatusBadRequest,
	errors.ErrCodeInvalidSlug:     http.StatusBadRequest,
	errors.ErrCodeInvalidColor:    http.StatusBadRequest,
	errors.ErrCodeInvalidDay:      http.StatusBadRequest,
	errors.ErrCodeInvalidURL:      http.StatusBadRequest,
	errors.ErrCodeUnauthorized:    http.StatusUnauthorized,
	errors.ErrCodeInvalidToken:    http.StatusUnauthorized,
	errors.ErrCodeMissingToken:    http.StatusUnauthorized,
	errors.ErrCodeInvalidPassword: http.StatusUnauthorized,
	errors.ErrCodeUserNotFound:    http.StatusUnauthorized,
	errors.ErrCodeInvalidEmail:    http.StatusUnauthorized,
	errors.ErrCodeAIUnavailable:   http.StatusInternalServerError,
	errors.ErrCodeAIFailed:        http.StatusInternalServerError,
	errors.ErrCodeUploadFailed:    http.StatusInternalServerError,
	errors.ErrCodeCopyFailed:      http.StatusInternalServerError,
	errors.ErrCodePDFFailed:       http.StatusInternalServerError,
}

// StatusFor maps err onto an HTTP status. Unknown errors are 500.
func StatusFor(err error) int {
	if appErr := errors.GetAppError(err); appErr != nil {
		if status, ok := statusByCode[appErr.Code]; ok {
			return status
		}
	}
	return http.StatusInternalServerError
}

// handleError logs err and answers with the mapped status. Database failures never leak their cause.
func handleError(c *gin.Context, log logger.Logger, err error) {
	status := StatusFor(err)
	appErr := errors.GetAppError(err)
	if status >= http.StatusInternalServerError {
		log.Error("%s %s: %v", c.Request.Method, c.FullPath(), err)
	}
	if appErr == nil || appErr.Code == errors.ErrCodeDBError {
		response.ServerError(c)
		return
	}
	response.ErrorWithStatus(c, status, appErr.Message)
}

// parseID reads a positive numeric path parameter, answering 400 when it is not one
func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "Invalid "+param)
		return 0, false
	}
	return uint(id), true
}
