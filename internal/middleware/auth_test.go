package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"finance-tracker/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

// newTestEngine 挂一个回显当前用户的受保护路由
func newTestEngine(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(secret), func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no user in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": user.ID, "username": user.Username})
	})
	return r
}

func doRequest(r *gin.Engine, header, query string) *httptest.ResponseRecorder {
	path := "/protected"
	if query != "" {
		path += "?token=" + query
	}
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	r := newTestEngine(testSecret)

	w := doRequest(r, "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Bearer 前缀不对也算没带 token
	w = doRequest(r, "Basic abc123", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	r := newTestEngine(testSecret)

	// 乱写的 token
	w := doRequest(r, "Bearer not-a-token", "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	// 别的密钥签出来的 token
	token, err := util.GenerateToken("other-secret", 1, "alice", time.Hour)
	require.NoError(t, err)
	w = doRequest(r, "Bearer "+token, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	r := newTestEngine(testSecret)

	token, err := util.GenerateToken(testSecret, 1, "alice", -time.Minute)
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+token, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	r := newTestEngine(testSecret)

	token, err := util.GenerateToken(testSecret, 7, "alice", time.Hour)
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":7,"username":"alice"}`, w.Body.String())
}

func TestAuthMiddleware_QueryToken(t *testing.T) {
	// 下载场景允许 ?token=xxx
	r := newTestEngine(testSecret)

	token, err := util.GenerateToken(testSecret, 7, "alice", time.Hour)
	require.NoError(t, err)

	w := doRequest(r, "", token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCurrentUser_Empty(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := CurrentUser(c)
	assert.False(t, ok)
}
