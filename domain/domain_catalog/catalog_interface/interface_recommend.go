package catalog_interface

import (
	"context"

	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_catalog/catalog_models"
)

type RecommendUsecase interface {
	Recommend(
		ctx context.Context,
		answers catalog_models.SurveyAnswers,
	) (*catalog_models.RecommendationResult, error)
}
