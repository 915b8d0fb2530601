package usecase_catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/Super-Badmen-Viper/VibeJewel/domain"
	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_catalog/catalog_interface"
	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_catalog/catalog_models"
)

type CatalogUsecase struct {
	repoCatalog catalog_interface.CatalogRepository
	timeout     time.Duration
}

func NewCatalogUsecase(
	repoCatalog catalog_interface.CatalogRepository,
	timeout time.Duration,
) catalog_interface.CatalogUsecase {
	return &CatalogUsecase{
		repoCatalog: repoCatalog,
		timeout:     timeout,
	}
}

func (uc *CatalogUsecase) ListCelebrities(ctx context.Context) ([]catalog_models.Celebrity, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	celebrities, err := uc.repoCatalog.GetCelebrities(ctx)
	if err != nil {
		return nil, fmt.Errorf("获取明星列表失败: %w", err)
	}
	return celebrities, nil
}

func (uc *CatalogUsecase) GetCelebrity(ctx context.Context, id int) (*catalog_models.Celebrity, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if id <= 0 {
		return nil, fmt.Errorf("celebrity id %d: %w", id, domain.ErrNotFound)
	}
	return uc.repoCatalog.GetCelebrityByID(ctx, id)
}

func (uc *CatalogUsecase) ListCategories(ctx context.Context) ([]catalog_models.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	categories, err := uc.repoCatalog.GetCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("获取类别列表失败: %w", err)
	}
	return categories, nil
}

func (uc *CatalogUsecase) ListSurveyQuestions(ctx context.Context) ([]catalog_models.SurveyQuestion, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	questions, err := uc.repoCatalog.GetSurveyQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("获取问卷失败: %w", err)
	}
	return questions, nil
}

// QueryProducts 依次应用类别筛选、明星筛选与排序
func (uc *CatalogUsecase) QueryProducts(
	ctx context.Context,
	query catalog_models.ProductQuery,
) ([]catalog_models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	products, err := uc.repoCatalog.GetProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("获取商品列表失败: %w", err)
	}
	return ApplyProductQuery(products, query), nil
}

func (uc *CatalogUsecase) GetProduct(ctx context.Context, id int) (*catalog_models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if id <= 0 {
		return nil, fmt.Errorf("product id %d: %w", id, domain.ErrNotFound)
	}
	return uc.repoCatalog.GetProductByID(ctx, id)
}

// ApplyProductQuery 类别值 All 等同于不筛选
func ApplyProductQuery(products []catalog_models.Product, query catalog_models.ProductQuery) []catalog_models.Product {
	category := query.Category
	if category == catalog_models.CategoryAll {
		category = ""
	}
	products = FilterProductsByCategory(products, category)
	products = FilterProductsByCelebrity(products, query.CelebrityID)
	return SortProducts(products, domain.ProductSortKey(query.Sort))
}
