package controller_catalog

import (
	"net/http"

	"github.com/Super-Badmen-Viper/VibeJewel/api/controller"
	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_catalog/catalog_interface"
	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_catalog/catalog_models"
	"github.com/gin-gonic/gin"
)

type RecommendController struct {
	RecommendUsecase catalog_interface.RecommendUsecase
}

func NewRecommendController(uc catalog_interface.RecommendUsecase) *RecommendController {
	return &RecommendController{RecommendUsecase: uc}
}

type recommendRequest struct {
	Answers catalog_models.SurveyAnswers `json:"answers"`
}

// RecommendationView 推荐响应
type RecommendationView struct {
	Celebrities       []catalog_models.Celebrity `json:"celebrities"`
	Products          []ProductView              `json:"products"`
	CelebrityFallback bool                       `json:"celebrity_fallback"`
	ProductFallback   bool                       `json:"product_fallback"`
}

func NewRecommendationView(r catalog_models.RecommendationResult) RecommendationView {
	celebrities := r.Celebrities
	if celebrities == nil {
		celebrities = []catalog_models.Celebrity{}
	}
	return RecommendationView{
		Celebrities:       celebrities,
		Products:          NewProductViews(r.Products),
		CelebrityFallback: r.CelebrityFallback,
		ProductFallback:   r.ProductFallback,
	}
}

// Recommend POST /recommend {"answers": [null, ["Classic & Timeless"], "Gold", null, "Under 50,000 INR"]}
func (c *RecommendController) Recommend(ctx *gin.Context) {
	var req recommendRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMETERS", "answers格式错误: "+err.Error())
		return
	}

	result, err := c.RecommendUsecase.Recommend(ctx.Request.Context(), req.Answers)
	if err != nil {
		controller.DomainErrorResponse(ctx, err)
		return
	}
	controller.SuccessResponse(ctx, "recommendations", NewRecommendationView(*result), len(result.Celebrities)+len(result.Products))
}
