package mongo

import (
	"context"
	"time"

	"github.com/Super-Badmen-Viper/VibeJewel/domain"
	"github.com/Super-Badmen-Viper/VibeJewel/util/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateIndexes 为商品集合建立筛选字段索引
func CreateIndexes(db Database) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	productCollection := db.Collection(domain.CollectionCatalogProduct)
	createIndex(ctx, productCollection, bson.D{{Key: "category", Value: 1}}, "category")
	createIndex(ctx, productCollection, bson.D{{Key: "celebrity_id", Value: 1}}, "celebrity_id")
	createIndex(ctx, productCollection, bson.D{{Key: "price", Value: 1}}, "price")
	// 复合索引优化
	createIndex(ctx, productCollection, bson.D{
		{Key: "celebrity_id", Value: 1},
		{Key: "category", Value: 1},
	}, "celebrity_category_compound")

	categoryCollection := db.Collection(domain.CollectionCatalogCategory)
	createIndex(ctx, categoryCollection, bson.D{{Key: "name", Value: 1}}, "name")
}

func createIndex(ctx context.Context, collection Collection, keys bson.D, name string) {
	model := mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetName(name),
	}
	if _, err := collection.Indexes().CreateOne(ctx, model); err != nil {
		logger.Warn().Err(err).Str("index", name).Msg("创建索引失败")
		return
	}
	logger.Debug().Str("index", name).Msg("索引创建成功")
}
