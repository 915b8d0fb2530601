package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Super-Badmen-Viper/VibeJewel/util/tokenutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/session", SessionAuth(secret), func(ctx *gin.Context) {
		ctx.String(http.StatusOK, ctx.GetString(ContextKeySessionID))
	})
	return r
}

func TestSessionAuth(t *testing.T) {
	r := newAuthRouter("secret")
	token, err := tokenutil.CreateSessionToken("abc", "secret", time.Hour, time.Now())
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"valid", "Bearer " + token, http.StatusOK, "abc"},
		{"lowercase scheme", "bearer " + token, http.StatusOK, "abc"},
		{"missing", "", http.StatusUnauthorized, "UNAUTHORIZED"},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"invalid", "Bearer nope", http.StatusUnauthorized, "INVALID_TOKEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/session", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
		})
	}
}
