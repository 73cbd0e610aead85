package middleware

import (
	"log"

	"finance-tracker/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuditMiddleware 记录登录用户的操作（方法、路径、状态码、来源）。
// 只记录已通过鉴权的请求，写库失败不影响本次请求。
func AuditMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 执行请求
		c.Next()

		user, ok := CurrentUser(c)
		if !ok {
			return
		}

		entry := models.AuditLog{
			UserID:    user.ID,
			RequestID: GetRequestID(c),
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			Status:    c.Writer.Status(),
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}
		if err := db.Create(&entry).Error; err != nil {
			log.Printf("audit log: %v", err)
		}
	}
}
