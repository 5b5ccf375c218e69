package api

import (
	"errors"
	"net/http"

	"expensetracker/config"
	"expensetracker/service"
	"expensetracker/store"

	"github.com/gin-gonic/gin"
)

// Response 错误响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// MessageResponse 确认消息
type MessageResponse struct {
	Message string `json:"message" example:"Successfully updated"`
}

// Success 成功响应，直接返回数据本身
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// SuccessWithMessage 仅返回确认消息的成功响应
func SuccessWithMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}

// Error 错误响应
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

// BadRequest 400 错误响应
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// InternalError 500 错误响应
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// NotFound 404 错误响应
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// ServiceError 将服务层错误映射为 HTTP 响应
func ServiceError(c *gin.Context, err error, fallback string) {
	var replaceErr *service.ReplaceError
	switch {
	case errors.As(err, &replaceErr):
		code := http.StatusInternalServerError
		message := config.SafeErrorMessage(err, fallback)
		if isClientError(replaceErr.Err) {
			code = http.StatusBadRequest
			message = err.Error()
		}
		c.JSON(code, Response{
			Code:    code,
			Message: message,
			Data: gin.H{
				"index":    replaceErr.Index,
				"inserted": replaceErr.Inserted,
			},
		})
	case isClientError(err):
		BadRequest(c, err.Error())
	case errors.Is(err, store.ErrNotFound):
		NotFound(c, err.Error())
	default:
		_ = c.Error(err)
		InternalError(c, config.SafeErrorMessage(err, fallback))
	}
}

func isClientError(err error) bool {
	return errors.Is(err, service.ErrInvalidDate) ||
		errors.Is(err, service.ErrInvalidRange) ||
		errors.Is(err, service.ErrValidation)
}
