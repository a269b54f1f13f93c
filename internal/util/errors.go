package util

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind 对外暴露的错误分类
type ErrorKind string

const (
	KindValidation   ErrorKind = "validation"
	KindNotFound     ErrorKind = "not_found"
	KindUnauthorized ErrorKind = "unauthorized"
	KindForbidden    ErrorKind = "forbidden"
	KindStore        ErrorKind = "store"
	KindRemote       ErrorKind = "remote"
	KindUpload       ErrorKind = "upload"
	KindInternal     ErrorKind = "internal"
)

// AppError 携带分类、可以返回给客户端的消息，以及只写日志的底层错误
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Status 分类对应的 HTTP 状态码
func (k ErrorKind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func Validation(message string) error {
	return &AppError{Kind: KindValidation, Message: message}
}

func NotFound(message string) error {
	return &AppError{Kind: KindNotFound, Message: message}
}

func Unauthenticated(message string) error {
	return &AppError{Kind: KindUnauthorized, Message: message}
}

func Forbidden(message string) error {
	return &AppError{Kind: KindForbidden, Message: message}
}

// Store 包装数据库错误
func Store(err error) error {
	return &AppError{Kind: KindStore, Message: "Database error", Err: err}
}

// Remote 包装文件托管服务错误
func Remote(err error) error {
	return &AppError{Kind: KindRemote, Message: "File host error", Err: err}
}

func UploadFailed(err error) error {
	return &AppError{Kind: KindUpload, Message: "An error occurred during upload.", Err: err}
}

// KindOf 返回错误分类，非 AppError 视为 internal
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

var (
	ErrPasswordRequired   = Validation("Password is required")
	ErrPasswordTooLong    = Validation("Password must be at most 72 bytes")
	ErrInvalidRole        = Validation("Role must be one of: user, admin")
	ErrRatingOutOfRange   = Validation("Rating must be between 1 and 5")
	ErrNoFile             = Validation("No file uploaded.")
	ErrUserNotFound       = NotFound("User not found")
	ErrDepartmentNotFound = NotFound("Department not found.")
	ErrInvalidCredentials = Unauthenticated("Invalid credentials")
	ErrAdminRequired      = Forbidden("Admin privileges required")
)
