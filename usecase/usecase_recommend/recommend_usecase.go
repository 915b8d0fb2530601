package usecase_recommend

import (
	"context"
	"fmt"
	"time"

	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_catalog/catalog_interface"
	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_catalog/catalog_models"
	"github.com/Super-Badmen-Viper/VibeJewel/util/logger"
	"github.com/Super-Badmen-Viper/VibeJewel/util/metrics"
)

type RecommendUsecase struct {
	repoCatalog catalog_interface.CatalogRepository
	timeout     time.Duration
}

func NewRecommendUsecase(
	repoCatalog catalog_interface.CatalogRepository,
	timeout time.Duration,
) catalog_interface.RecommendUsecase {
	return &RecommendUsecase{
		repoCatalog: repoCatalog,
		timeout:     timeout,
	}
}

func (uc *RecommendUsecase) Recommend(
	ctx context.Context,
	answers catalog_models.SurveyAnswers,
) (*catalog_models.RecommendationResult, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	catalog, err := uc.repoCatalog.GetCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("获取商品目录失败: %w", err)
	}

	result := Evaluate(catalog, answers)
	return &result, nil
}

// Evaluate 生成推荐并记录指标
func Evaluate(
	catalog *catalog_models.Catalog,
	answers catalog_models.SurveyAnswers,
) catalog_models.RecommendationResult {
	result := GenerateRecommendations(catalog, answers)
	metrics.RecordRecommendation(result.CelebrityFallback, result.ProductFallback)

	logger.Debug().
		Int("celebrities", len(result.Celebrities)).
		Int("products", len(result.Products)).
		Bool("celebrity_fallback", result.CelebrityFallback).
		Bool("product_fallback", result.ProductFallback).
		Msg("recommendations generated")

	return result
}
