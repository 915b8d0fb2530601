package middleware

import (
	"strconv"
	"time"

	"github.com/Super-Badmen-Viper/VibeJewel/util/logger"
	"github.com/Super-Badmen-Viper/VibeJewel/util/metrics"
	"github.com/gin-gonic/gin"
)

// RequestLogger 记录请求日志与 HTTP 指标，路由使用注册模板避免标签爆炸
func RequestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := ctx.Writer.Status()
		elapsed := time.Since(start)

		metrics.HTTPRequests.WithLabelValues(ctx.Request.Method, route, strconv.Itoa(status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(ctx.Request.Method, route).Observe(elapsed.Seconds())

		event := logger.Info()
		if status >= 500 {
			event = logger.Error()
		}
		event.
			Str("method", ctx.Request.Method).
			Str("route", route).
			Int("status", status).
			Dur("latency", elapsed).
			Str("client_ip", ctx.ClientIP()).
			Msg("request")
	}
}
