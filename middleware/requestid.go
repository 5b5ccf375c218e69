package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader 请求 ID 头
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "requestID"

// RequestID 为每个请求分配 ID，客户端已带则沿用
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID 获取当前请求 ID
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// LogFormatter 访问日志格式，带请求 ID
func LogFormatter(param gin.LogFormatterParams) string {
	id, _ := param.Keys[requestIDKey].(string)
	if param.ErrorMessage != "" {
		return fmt.Sprintf("[GIN] %s | %3d | %13v | %15s | %-7s %#v | %s | %s",
			param.TimeStamp.Format("2006/01/02 - 15:04:05"),
			param.StatusCode, param.Latency, param.ClientIP, param.Method, param.Path, id, param.ErrorMessage)
	}
	return fmt.Sprintf("[GIN] %s | %3d | %13v | %15s | %-7s %#v | %s\n",
		param.TimeStamp.Format("2006/01/02 - 15:04:05"),
		param.StatusCode, param.Latency, param.ClientIP, param.Method, param.Path, id)
}
