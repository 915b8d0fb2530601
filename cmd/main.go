package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Super-Badmen-Viper/VibeJewel/api/middleware"
	"github.com/Super-Badmen-Viper/VibeJewel/api/route"
	"github.com/Super-Badmen-Viper/VibeJewel/bootstrap"
	"github.com/Super-Badmen-Viper/VibeJewel/util/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	envFile := flag.String("env", ".env", "配置文件路径")
	flag.Parse()

	app, err := bootstrap.App(*envFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("启动失败")
	}
	defer app.CloseDBConnection()

	if app.Env.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery(), middleware.RequestLogger())
	route.Setup(app, engine)

	srv := &http.Server{
		Addr:              app.Env.ServerAddress,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("HTTP 服务启动")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("HTTP 服务异常退出")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("HTTP 服务关闭失败")
	}
	logger.Info().Msg("HTTP 服务已停止")
}
