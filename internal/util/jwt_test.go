package util

import (
	"testing"
	"time"
)

const testSecret = "test-secret-for-jwt"

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(testSecret, 42, "alice", time.Hour)
	if err != nil {
		t.Fatalf("生成 token 失败: %v", err)
	}

	claims, err := ParseToken(testSecret, token)
	if err != nil {
		t.Fatalf("解析 token 失败: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID 错误: 期望 42，实际 %d", claims.UserID)
	}
	if claims.Username != "alice" {
		t.Errorf("Username 错误: 期望 alice，实际 %s", claims.Username)
	}
	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		t.Fatal("缺少签发/过期时间")
	}
	// 有效期应为 1 小时
	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if ttl != time.Hour {
		t.Errorf("有效期错误: 期望 1h，实际 %v", ttl)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, _ := GenerateToken(testSecret, 1, "alice", time.Hour)

	// 换一个密钥必须验签失败
	if _, err := ParseToken("another-secret", token); err == nil {
		t.Error("不同密钥签发的 token 应被拒绝")
	}
}

func TestParseToken_Expired(t *testing.T) {
	// 负 ttl 直接得到已过期的 token
	token, err := GenerateToken(testSecret, 1, "alice", -time.Minute)
	if err != nil {
		t.Fatalf("生成 token 失败: %v", err)
	}

	if _, err := ParseToken(testSecret, token); err == nil {
		t.Error("过期 token 应被拒绝")
	}
}

func TestParseToken_Malformed(t *testing.T) {
	cases := []string{
		"",
		"not-a-token",
		"a.b.c",
	}
	for _, tokenStr := range cases {
		if _, err := ParseToken(testSecret, tokenStr); err == nil {
			t.Errorf("非法 token %q 应被拒绝", tokenStr)
		}
	}
}

func TestParseToken_Tampered(t *testing.T) {
	token, _ := GenerateToken(testSecret, 1, "alice", time.Hour)

	// 改动最后一个字符破坏签名
	tampered := token[:len(token)-1] + "x"
	if tampered == token {
		tampered = token[:len(token)-1] + "y"
	}
	if _, err := ParseToken(testSecret, tampered); err == nil {
		t.Error("被篡改的 token 应被拒绝")
	}
}
