package route

import (
	"net/http"

	"github.com/Super-Badmen-Viper/VibeJewel/api/route/route_catalog"
	"github.com/Super-Badmen-Viper/VibeJewel/api/route/route_session"
	"github.com/Super-Badmen-Viper/VibeJewel/bootstrap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func Setup(app *bootstrap.Application, engine *gin.Engine) {
	metricsHandler := promhttp.Handler()
	engine.GET("/metrics", func(ctx *gin.Context) {
		metricsHandler.ServeHTTP(ctx.Writer, ctx.Request)
	})

	apiRouter := engine.Group("/api/v1")
	apiRouter.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"code": "SUCCESS", "status": "ok"})
	})

	route_catalog.NewCatalogRouter(app.CtxTimeout, app.Catalog, apiRouter)
	route_catalog.NewRecommendRouter(app.CtxTimeout, app.Catalog, apiRouter)
	route_session.NewSessionRouter(
		app.CtxTimeout,
		route_session.SessionRouterConfig{
			TokenSecret: app.Env.SessionTokenSecret,
			TokenExpiry: app.SessionTTL,
		},
		app.Sessions,
		app.Catalog,
		apiRouter,
	)
}
