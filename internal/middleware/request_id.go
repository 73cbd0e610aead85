package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "requestID"

// RequestID 给每个请求分配一个 uuid，写进响应头，审计日志也会带上。
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// GetRequestID 返回当前请求的 request id，没有则返回空串。
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
