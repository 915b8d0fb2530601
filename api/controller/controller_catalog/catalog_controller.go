package controller_catalog

import (
	"net/http"
	"strconv"

	"github.com/Super-Badmen-Viper/VibeJewel/api/controller"
	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_catalog/catalog_interface"
	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_catalog/catalog_models"
	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	CatalogUsecase catalog_interface.CatalogUsecase
}

func NewCatalogController(uc catalog_interface.CatalogUsecase) *CatalogController {
	return &CatalogController{CatalogUsecase: uc}
}

func (c *CatalogController) GetCelebrities(ctx *gin.Context) {
	celebrities, err := c.CatalogUsecase.ListCelebrities(ctx.Request.Context())
	if err != nil {
		controller.DomainErrorResponse(ctx, err)
		return
	}
	controller.SuccessResponse(ctx, "celebrities", celebrities, len(celebrities))
}

func (c *CatalogController) GetCelebrity(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ID", "id参数必须是数字")
		return
	}

	celebrity, err := c.CatalogUsecase.GetCelebrity(ctx.Request.Context(), id)
	if err != nil {
		controller.DomainErrorResponse(ctx, err)
		return
	}
	controller.SuccessResponse(ctx, "celebrity", celebrity, 1)
}

func (c *CatalogController) GetCategories(ctx *gin.Context) {
	categories, err := c.CatalogUsecase.ListCategories(ctx.Request.Context())
	if err != nil {
		controller.DomainErrorResponse(ctx, err)
		return
	}
	controller.SuccessResponse(ctx, "categories", categories, len(categories))
}

func (c *CatalogController) GetSurveyQuestions(ctx *gin.Context) {
	questions, err := c.CatalogUsecase.ListSurveyQuestions(ctx.Request.Context())
	if err != nil {
		controller.DomainErrorResponse(ctx, err)
		return
	}
	controller.SuccessResponse(ctx, "questions", questions, len(questions))
}

// GetProducts GET /catalog/products?category=RINGS&celebrity_id=1&sort=price-low-high
func (c *CatalogController) GetProducts(ctx *gin.Context) {
	var query catalog_models.ProductQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMETERS", "celebrity_id参数必须是数字")
		return
	}

	products, err := c.CatalogUsecase.QueryProducts(ctx.Request.Context(), query)
	if err != nil {
		controller.DomainErrorResponse(ctx, err)
		return
	}
	controller.SuccessResponse(ctx, "products", NewProductViews(products), len(products))
}

func (c *CatalogController) GetProduct(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ID", "id参数必须是数字")
		return
	}

	product, err := c.CatalogUsecase.GetProduct(ctx.Request.Context(), id)
	if err != nil {
		controller.DomainErrorResponse(ctx, err)
		return
	}
	controller.SuccessResponse(ctx, "product", NewProductView(*product), 1)
}
