package middleware

import (
	"net/http"
	"strings"

	"finance-tracker/internal/util"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

// AuthUser 是从 token 解析出来的当前请求身份，只在本次请求内有效。
type AuthUser struct {
	ID       uint
	Username string
}

// AuthMiddleware 校验 JWT，并在 context 里放入当前用户身份。
// token 是自包含的，这里只验签名和过期，不查数据库。
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		// 1) Header: Authorization: Bearer xxx
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = parts[1]
			}
		}

		// 2) URL 查询参数 ?token=xxx（用于下载等无法自定义 Header 的场景）
		if tokenStr == "" {
			tokenStr = c.Query("token")
		}

		if tokenStr == "" {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
			c.Abort()
			return
		}

		claims, err := util.ParseToken(jwtSecret, tokenStr)
		if err != nil {
			util.Error(c, http.StatusForbidden, util.CodeForbidden, "登录已失效，请重新登录")
			c.Abort()
			return
		}

		c.Set(currentUserKey, &AuthUser{
			ID:       claims.UserID,
			Username: claims.Username,
		})
		c.Next()
	}
}

// CurrentUser 取出当前请求的登录身份。
func CurrentUser(c *gin.Context) (*AuthUser, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*AuthUser)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
