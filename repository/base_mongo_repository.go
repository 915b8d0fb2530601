package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Super-Badmen-Viper/VibeJewel/domain"
	"github.com/Super-Badmen-Viper/VibeJewel/mongo"
	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
)

// BaseMongoRepository MongoDB通用Repository实现
type BaseMongoRepository[T domain.Entity] struct {
	db         mongo.Database
	collection string
}

// NewBaseMongoRepository 创建新的MongoDB Repository实例
func NewBaseMongoRepository[T domain.Entity](db mongo.Database, collection string) domain.BaseRepository[T] {
	return &BaseMongoRepository[T]{
		db:         db,
		collection: collection,
	}
}

// GetAll 获取所有实体
func (r *BaseMongoRepository[T]) GetAll(ctx context.Context) ([]*T, error) {
	return r.GetByFilter(ctx, bson.M{})
}

// GetByID 根据ID获取实体
func (r *BaseMongoRepository[T]) GetByID(ctx context.Context, id int) (*T, error) {
	if id <= 0 {
		return nil, errors.New("id must be positive")
	}

	entity, err := r.GetOneByFilter(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, fmt.Errorf("entity not found with id %d: %w", id, domain.ErrNotFound)
	}
	return entity, nil
}

// GetByFilter 根据过滤条件获取实体
func (r *BaseMongoRepository[T]) GetByFilter(ctx context.Context, filter interface{}) ([]*T, error) {
	coll := r.db.Collection(r.collection)
	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find entities: %w", err)
	}
	defer cursor.Close(ctx)

	var entities []*T
	for cursor.Next(ctx) {
		var entity T
		if err := cursor.Decode(&entity); err != nil {
			return nil, fmt.Errorf("failed to decode entity: %w", err)
		}
		entities = append(entities, &entity)
	}

	return entities, nil
}

// GetOneByFilter 根据过滤条件获取单个实体
func (r *BaseMongoRepository[T]) GetOneByFilter(ctx context.Context, filter interface{}) (*T, error) {
	coll := r.db.Collection(r.collection)
	var entity T
	err := coll.FindOne(ctx, filter).Decode(&entity)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, nil // 没找到返回nil，不是错误
		}
		return nil, fmt.Errorf("failed to find entity: %w", err)
	}

	return &entity, nil
}

// Count 统计数量
func (r *BaseMongoRepository[T]) Count(ctx context.Context, filter interface{}) (int64, error) {
	coll := r.db.Collection(r.collection)
	count, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count entities: %w", err)
	}

	return count, nil
}

// BulkUpsert 按 _id 批量插入或更新
func (r *BaseMongoRepository[T]) BulkUpsert(ctx context.Context, entities []*T) (int, error) {
	if len(entities) == 0 {
		return 0, nil
	}

	coll := r.db.Collection(r.collection)
	bulk := coll.BulkWrite()

	for _, entity := range entities {
		if entity == nil {
			return 0, errors.New("entity cannot be nil")
		}
		model := driver.NewUpdateOneModel().
			SetFilter(bson.M{"_id": (*entity).EntityID()}).
			SetUpdate(bson.M{"$set": *entity}).
			SetUpsert(true)

		bulk.AddModel(model)
	}

	result, err := bulk.Execute(ctx)
	if err != nil {
		return 0, fmt.Errorf("bulk upsert failed: %w", err)
	}

	return int(result.UpsertedCount() + result.ModifiedCount()), nil
}

// DeleteMany 批量删除
func (r *BaseMongoRepository[T]) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	coll := r.db.Collection(r.collection)
	deletedCount, err := coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to delete entities: %w", err)
	}

	return deletedCount, nil
}
