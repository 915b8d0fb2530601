package route_catalog

import (
	"time"

	"github.com/Super-Badmen-Viper/VibeJewel/api/controller/controller_catalog"
	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_catalog/catalog_interface"
	"github.com/Super-Badmen-Viper/VibeJewel/usecase/usecase_catalog"
	"github.com/Super-Badmen-Viper/VibeJewel/usecase/usecase_recommend"
	"github.com/gin-gonic/gin"
)

func NewCatalogRouter(
	timeout time.Duration,
	repo catalog_interface.CatalogRepository,
	group *gin.RouterGroup,
) {
	uc := usecase_catalog.NewCatalogUsecase(repo, timeout)
	ctrl := controller_catalog.NewCatalogController(uc)

	catalogGroup := group.Group("/catalog")
	{
		catalogGroup.GET("/celebrities", ctrl.GetCelebrities)
		catalogGroup.GET("/celebrities/:id", ctrl.GetCelebrity)
		catalogGroup.GET("/categories", ctrl.GetCategories)
		catalogGroup.GET("/products", ctrl.GetProducts)
		catalogGroup.GET("/products/:id", ctrl.GetProduct)
	}

	group.GET("/survey/questions", ctrl.GetSurveyQuestions)
}

func NewRecommendRouter(
	timeout time.Duration,
	repo catalog_interface.CatalogRepository,
	group *gin.RouterGroup,
) {
	uc := usecase_recommend.NewRecommendUsecase(repo, timeout)
	ctrl := controller_catalog.NewRecommendController(uc)

	group.POST("/recommend", ctrl.Recommend)
}
