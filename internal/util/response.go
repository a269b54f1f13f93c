package util

import (
	"coursehub_backend/pkg/logger"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse 统一错误结构，不包含底层错误细节
type ErrorResponse struct {
	Code    int       `json:"code"`
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// Text 写操作成功时返回纯文本确认
func Text(c *gin.Context, message string) {
	c.String(http.StatusOK, message)
}

// JSON 直接返回数据，列表接口为 JSON 数组
func JSON(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Error(c *gin.Context, kind ErrorKind, message string) {
	code := kind.Status()
	c.JSON(code, ErrorResponse{
		Code:    code,
		Kind:    kind,
		Message: message,
	})
}

func Unauthorized(c *gin.Context) {
	Error(c, KindUnauthorized, "Unauthorized")
}

func ForbiddenResponse(c *gin.Context) {
	Error(c, KindForbidden, "Forbidden")
}

func BadRequest(c *gin.Context, message string) {
	Error(c, KindValidation, message)
}

func InternalServerError(c *gin.Context) {
	Error(c, KindInternal, "Internal server error")
}

// HandleError 记录完整错误并返回脱敏后的错误信息
func HandleError(c *gin.Context, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		LogInternalError(c, err)
		return
	}

	fields := []zap.Field{
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.String("kind", string(appErr.Kind)),
		zap.Error(err),
	}
	if appErr.Kind.Status() >= http.StatusInternalServerError {
		logger.Log.Error("request failed", fields...)
	} else {
		logger.Log.Info("request rejected", fields...)
	}

	Error(c, appErr.Kind, appErr.Message)
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	InternalServerError(c)
}
