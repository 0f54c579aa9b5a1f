package errors

import (
	"errors"
	"fmt"
)

// ErrorCode is the machine readable error code returned to clients
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken    ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken    ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidPassword ErrorCode = "INVALID_PASSWORD"
	ErrCodeUserNotFound    ErrorCode = "USER_NOT_FOUND"
	ErrCodeInvalidEmail    ErrorCode = "INVALID_EMAIL"

	// Catalog errors
	ErrCodeNotFound       ErrorCode = "NOT_FOUND"
	ErrCodeSingleton      ErrorCode = "SINGLETON_EXISTS"
	ErrCodeCopyFailed     ErrorCode = "COPY_FAILED"
	ErrCodeInvalidSlug    ErrorCode = "INVALID_SLUG"
	ErrCodeInvalidColor   ErrorCode = "INVALID_COLOR"
	ErrCodeInvalidDay     ErrorCode = "INVALID_DAY"
	ErrCodeInvalidURL     ErrorCode = "INVALID_URL"
	ErrCodeAIUnavailable  ErrorCode = "AI_UNAVAILABLE"
	ErrCodeAIFailed       ErrorCode = "AI_FAILED"
	ErrCodeUploadFailed   ErrorCode = "UPLOAD_FAILED"
	ErrCodePDFFailed      ErrorCode = "PDF_FAILED"
	ErrCodeParentNotFound ErrorCode = "PARENT_NOT_FOUND"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// AppError carries a code and a user facing message alongside the cause
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError reports whether err is, or wraps, an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError returns the AppError in err's chain, or nil
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HasCode reports whether err carries the given code
func HasCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

var (
	ErrUnauthorized = errors.New("unauthorized")

	ErrContinentNotFound = errors.New("continent not found")
	ErrCountryNotFound   = errors.New("country not found")
	ErrCityNotFound      = errors.New("city not found")
	ErrPackageNotFound   = errors.New("package not found")
	ErrSettingsExist     = errors.New("homepage settings already exist")

	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidFormat   = errors.New("invalid format")
)
