package catalog_interface

import (
	"context"

	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_catalog/catalog_models"
)

// CatalogRepository 只读目录仓储，返回值均为副本
type CatalogRepository interface {
	GetCatalog(ctx context.Context) (*catalog_models.Catalog, error)

	GetCelebrities(ctx context.Context) ([]catalog_models.Celebrity, error)
	GetCelebrityByID(ctx context.Context, id int) (*catalog_models.Celebrity, error)

	GetCategories(ctx context.Context) ([]catalog_models.Category, error)

	GetProducts(ctx context.Context) ([]catalog_models.Product, error)
	GetProductByID(ctx context.Context, id int) (*catalog_models.Product, error)

	GetSurveyQuestions(ctx context.Context) ([]catalog_models.SurveyQuestion, error)
}

// CatalogLoader 目录快照来源（内置数据、YAML 文件、MongoDB）
type CatalogLoader interface {
	LoadCatalog(ctx context.Context) (*catalog_models.Catalog, error)
}

type CatalogUsecase interface {
	ListCelebrities(ctx context.Context) ([]catalog_models.Celebrity, error)
	GetCelebrity(ctx context.Context, id int) (*catalog_models.Celebrity, error)
	ListCategories(ctx context.Context) ([]catalog_models.Category, error)
	ListSurveyQuestions(ctx context.Context) ([]catalog_models.SurveyQuestion, error)

	QueryProducts(ctx context.Context, query catalog_models.ProductQuery) ([]catalog_models.Product, error)
	GetProduct(ctx context.Context, id int) (*catalog_models.Product, error)
}
