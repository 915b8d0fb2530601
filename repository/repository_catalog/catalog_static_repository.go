package repository_catalog

import (
	"context"
	"fmt"
	"slices"

	"github.com/Super-Badmen-Viper/VibeJewel/domain"
	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_catalog/catalog_interface"
	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_catalog/catalog_models"
)

// catalogStaticRepository 进程内只读目录，启动时加载一次后不再修改，可并发读取
type catalogStaticRepository struct {
	catalog *catalog_models.Catalog
}

func NewCatalogStaticRepository(catalog *catalog_models.Catalog) catalog_interface.CatalogRepository {
	return &catalogStaticRepository{catalog: catalog.Clone()}
}

func (r *catalogStaticRepository) GetCatalog(ctx context.Context) (*catalog_models.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.catalog.Clone(), nil
}

func (r *catalogStaticRepository) GetCelebrities(ctx context.Context) ([]catalog_models.Celebrity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(r.catalog.Celebrities), nil
}

func (r *catalogStaticRepository) GetCelebrityByID(ctx context.Context, id int) (*catalog_models.Celebrity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, c := range r.catalog.Celebrities {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, fmt.Errorf("celebrity id %d: %w", id, domain.ErrNotFound)
}

func (r *catalogStaticRepository) GetCategories(ctx context.Context) ([]catalog_models.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(r.catalog.Categories), nil
}

func (r *catalogStaticRepository) GetProducts(ctx context.Context) ([]catalog_models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(r.catalog.Products), nil
}

func (r *catalogStaticRepository) GetProductByID(ctx context.Context, id int) (*catalog_models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, p := range r.catalog.Products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("product id %d: %w", id, domain.ErrNotFound)
}

func (r *catalogStaticRepository) GetSurveyQuestions(ctx context.Context) ([]catalog_models.SurveyQuestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(r.catalog.SurveyQuestions), nil
}
