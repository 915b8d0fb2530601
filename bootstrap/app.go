package bootstrap

import (
	"time"

	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_catalog/catalog_interface"
	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_session/session_interface"
	"github.com/Super-Badmen-Viper/VibeJewel/mongo"
	"github.com/Super-Badmen-Viper/VibeJewel/repository/repository_session"
	"github.com/Super-Badmen-Viper/VibeJewel/util/logger"
)

type Application struct {
	Env        *Env
	Mongo      mongo.Client
	Catalog    catalog_interface.CatalogRepository
	Sessions   session_interface.SessionRepository
	SessionTTL time.Duration
	CtxTimeout time.Duration
}

func App(envFile string) (*Application, error) {
	env, err := NewEnv(envFile)
	if err != nil {
		return nil, err
	}
	logger.Init(env.LogLevel, env.LogFormat)

	// 会话与令牌同时过期
	sessionTTL := time.Duration(env.SessionTokenExpiryHour) * time.Hour
	app := &Application{
		Env:        env,
		Sessions:   repository_session.NewSessionMemoryRepository(sessionTTL),
		SessionTTL: sessionTTL,
		CtxTimeout: time.Duration(env.ContextTimeout) * time.Second,
	}

	var db mongo.Database
	if env.CatalogSource == CatalogSourceMongo {
		app.Mongo, err = NewMongoDatabase(env)
		if err != nil {
			return nil, err
		}
		db = app.Mongo.Database(env.DBName)
	}

	app.Catalog, err = NewCatalogRepository(env, db)
	if err != nil {
		app.CloseDBConnection()
		return nil, err
	}

	if env.SessionTokenSecret == "" {
		env.SessionTokenSecret = "vibejewel-dev-secret"
		logger.Warn().Msg("SESSION_TOKEN_SECRET 未设置，使用开发默认值")
	}
	return app, nil
}

func (app *Application) CloseDBConnection() {
	CloseMongoDBConnection(app.Mongo)
}
