package util

import (
	"github.com/gin-gonic/gin"
)

// 通用返回结构里的 data 使用 map
type Response map[string]interface{}

// 业务错误码
const (
	CodeOK            = 0
	CodeInvalidParam  = 40001 // 缺少或非法的请求字段
	CodeBadCredential = 40002 // 用户名或密码错误（统一，不区分哪个错）
	CodeAuth          = 40101 // 未携带 token
	CodeForbidden     = 40301 // token 非法或已过期
	CodeNotFound      = 40401
	CodeConflict      = 40901 // 用户名已存在
	CodeServerErr     = 50001
)

// Success 统一成功返回，status 由调用方指定（创建资源用 201）
func Success(c *gin.Context, status int, data Response) {
	c.JSON(status, data)
}

// Error 统一错误返回，内部错误细节不放进响应
func Error(c *gin.Context, httpStatus int, code int, msg string) {
	c.JSON(httpStatus, gin.H{
		"code":  code,
		"error": msg,
	})
}
