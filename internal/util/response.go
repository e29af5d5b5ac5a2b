package util

import (
	"net/http"

	"paw_match_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse 统一错误响应结构，message 仅在需要补充说明时返回
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// 成功响应直接返回资源本身，不额外包一层

func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func Error(c *gin.Context, code int, err string) {
	c.JSON(code, ErrorResponse{Error: err})
}

func ErrorWithMessage(c *gin.Context, code int, err, message string) {
	c.JSON(code, ErrorResponse{Error: err, Message: message})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "Unauthorized")
}

func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// LogInternalError 记录存储层错误；详细信息只在非 release 模式下返回给调用方
func LogInternalError(c *gin.Context, err error, release bool) {
	logger.Log.Error("internal server error",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	if release {
		Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	ErrorWithMessage(c, http.StatusInternalServerError, "Internal server error", err.Error())
}
