package bootstrap

import (
	"context"
	"time"

	"github.com/Super-Badmen-Viper/VibeJewel/mongo"
	"github.com/Super-Badmen-Viper/VibeJewel/util/logger"
)

func NewMongoDatabase(env *Env) (mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.NewClient(env.MongoURI())
	if err != nil {
		return nil, err
	}
	if err := client.Connect(ctx); err != nil {
		return nil, err
	}
	if err := client.Ping(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	logger.Info().Str("host", env.DBHost).Str("db", env.DBName).Msg("MongoDB 连接成功")
	return client, nil
}

func CloseMongoDBConnection(client mongo.Client) {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		logger.Error().Err(err).Msg("关闭 MongoDB 连接失败")
		return
	}
	logger.Info().Msg("MongoDB 连接已关闭")
}
