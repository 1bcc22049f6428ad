package handler

import (
	"github.com/gin-gonic/gin"

	"naminara/backend/pkg/response"
)

// MustGetUserID Gin 컨텍스트에서 user_id를 안전하게 추출한다.
// JWT 미들웨어가 주입하지 않았다면 401을 기록하고 false를 반환한다.
// 호출자는 ok=false일 때 바로 return해야 한다.
func MustGetUserID(c *gin.Context) (string, bool) {
	return mustGetString(c, "user_id")
}

// MustGetName 컨텍스트에서 사용자 이름 추출 — 선장 가시성 필터에 사용
func MustGetName(c *gin.Context) (string, bool) {
	return mustGetString(c, "name")
}

// MustGetRole 컨텍스트에서 역할 추출
func MustGetRole(c *gin.Context) (string, bool) {
	return mustGetString(c, "role")
}

func mustGetString(c *gin.Context, key string) (string, bool) {
	v, exists := c.Get(key)
	if !exists {
		response.Unauthorized(c, 10002, "인증되지 않았습니다")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "인증되지 않았습니다")
		return "", false
	}
	return s, true
}
