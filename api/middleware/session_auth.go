package middleware

import (
	"net/http"
	"strings"

	"github.com/Super-Badmen-Viper/VibeJewel/api/controller"
	"github.com/Super-Badmen-Viper/VibeJewel/util/tokenutil"
	"github.com/gin-gonic/gin"
)

// ContextKeySessionID gin 上下文中的会话ID键
const ContextKeySessionID = "x-session-id"

// SessionAuth 校验 Authorization: Bearer <token>，通过后写入会话ID
func SessionAuth(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		scheme, token, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
			controller.ErrorResponse(ctx, http.StatusUnauthorized, "UNAUTHORIZED", "缺少会话令牌")
			return
		}

		sessionID, err := tokenutil.ExtractSessionID(strings.TrimSpace(token), secret)
		if err != nil {
			controller.ErrorResponse(ctx, http.StatusUnauthorized, "INVALID_TOKEN", "会话令牌无效或已过期")
			return
		}

		ctx.Set(ContextKeySessionID, sessionID)
		ctx.Next()
	}
}
