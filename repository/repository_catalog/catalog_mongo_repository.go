package repository_catalog

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/Super-Badmen-Viper/VibeJewel/domain"
	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_catalog/catalog_models"
	"github.com/Super-Badmen-Viper/VibeJewel/mongo"
	"github.com/Super-Badmen-Viper/VibeJewel/repository"
	"go.mongodb.org/mongo-driver/bson"
)

// CatalogMongoRepository 目录的 MongoDB 来源，启动时加载为只读快照
type CatalogMongoRepository struct {
	celebrities domain.BaseRepository[catalog_models.Celebrity]
	categories  domain.BaseRepository[catalog_models.Category]
	products    domain.BaseRepository[catalog_models.Product]
	questions   domain.BaseRepository[catalog_models.SurveyQuestion]
}

func NewCatalogMongoRepository(db mongo.Database) *CatalogMongoRepository {
	return &CatalogMongoRepository{
		celebrities: repository.NewBaseMongoRepository[catalog_models.Celebrity](db, domain.CollectionCatalogCelebrity),
		categories:  repository.NewBaseMongoRepository[catalog_models.Category](db, domain.CollectionCatalogCategory),
		products:    repository.NewBaseMongoRepository[catalog_models.Product](db, domain.CollectionCatalogProduct),
		questions:   repository.NewBaseMongoRepository[catalog_models.SurveyQuestion](db, domain.CollectionCatalogSurveyQuestion),
	}
}

// LoadCatalog 读取全部集合，按ID排序以保证目录顺序稳定
func (r *CatalogMongoRepository) LoadCatalog(ctx context.Context) (*catalog_models.Catalog, error) {
	celebrities, err := loadAll(ctx, r.celebrities)
	if err != nil {
		return nil, fmt.Errorf("load celebrities: %w", err)
	}
	categories, err := loadAll(ctx, r.categories)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	products, err := loadAll(ctx, r.products)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	questions, err := loadAll(ctx, r.questions)
	if err != nil {
		return nil, fmt.Errorf("load survey questions: %w", err)
	}

	catalog := &catalog_models.Catalog{
		Celebrities:     celebrities,
		Categories:      categories,
		Products:        products,
		SurveyQuestions: questions,
	}
	if err := ValidateCatalog(catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

// Seed 将目录写入 MongoDB，已存在的记录按ID覆盖
func (r *CatalogMongoRepository) Seed(ctx context.Context, catalog *catalog_models.Catalog) (int, error) {
	if err := ValidateCatalog(catalog); err != nil {
		return 0, err
	}

	total := 0
	steps := []func() (int, error){
		func() (int, error) { return r.celebrities.BulkUpsert(ctx, pointers(catalog.Celebrities)) },
		func() (int, error) { return r.categories.BulkUpsert(ctx, pointers(catalog.Categories)) },
		func() (int, error) { return r.products.BulkUpsert(ctx, pointers(catalog.Products)) },
		func() (int, error) { return r.questions.BulkUpsert(ctx, pointers(catalog.SurveyQuestions)) },
	}
	for _, step := range steps {
		n, err := step()
		if err != nil {
			return total, fmt.Errorf("seed catalog: %w", err)
		}
		total += n
	}
	return total, nil
}

// Reseed 清空四个集合后重新写入
func (r *CatalogMongoRepository) Reseed(ctx context.Context, catalog *catalog_models.Catalog) (int, error) {
	if err := ValidateCatalog(catalog); err != nil {
		return 0, err
	}
	for _, deleteAll := range []func(context.Context, interface{}) (int64, error){
		r.celebrities.DeleteMany,
		r.categories.DeleteMany,
		r.products.DeleteMany,
		r.questions.DeleteMany,
	} {
		if _, err := deleteAll(ctx, bson.M{}); err != nil {
			return 0, fmt.Errorf("clear catalog: %w", err)
		}
	}
	return r.Seed(ctx, catalog)
}

// IsEmpty 商品集合为空时视为未初始化
func (r *CatalogMongoRepository) IsEmpty(ctx context.Context) (bool, error) {
	count, err := r.products.Count(ctx, bson.M{})
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

func loadAll[T domain.Entity](ctx context.Context, repo domain.BaseRepository[T]) ([]T, error) {
	entities, err := repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(entities))
	for _, e := range entities {
		out = append(out, *e)
	}
	slices.SortFunc(out, func(a, b T) int {
		return cmp.Compare(a.EntityID(), b.EntityID())
	})
	return out, nil
}

func pointers[T any](items []T) []*T {
	out := make([]*T, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out
}
