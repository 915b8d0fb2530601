package domain

import (
	"context"
)

// Entity 可持久化实体，ID 对应 bson 的 _id 字段
type Entity interface {
	EntityID() int
}

// BaseRepository 通用Repository接口
// T: 实体类型，必须实现 Entity
type BaseRepository[T Entity] interface {
	// 查询操作
	GetAll(ctx context.Context) ([]*T, error)
	GetByID(ctx context.Context, id int) (*T, error)
	GetByFilter(ctx context.Context, filter interface{}) ([]*T, error)
	GetOneByFilter(ctx context.Context, filter interface{}) (*T, error)
	Count(ctx context.Context, filter interface{}) (int64, error)

	// 批量操作
	BulkUpsert(ctx context.Context, entities []*T) (int, error)
	DeleteMany(ctx context.Context, filter interface{}) (int64, error)
}
