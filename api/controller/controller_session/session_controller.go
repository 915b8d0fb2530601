package controller_session

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Super-Badmen-Viper/VibeJewel/api/controller"
	"github.com/Super-Badmen-Viper/VibeJewel/api/controller/controller_catalog"
	"github.com/Super-Badmen-Viper/VibeJewel/api/middleware"
	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_catalog/catalog_models"
	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_session/session_interface"
	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_session/session_models"
	"github.com/Super-Badmen-Viper/VibeJewel/util/tokenutil"
	"github.com/gin-gonic/gin"
)

type SessionController struct {
	SessionUsecase session_interface.SessionUsecase
	TokenSecret    string
	TokenExpiry    time.Duration
}

func NewSessionController(uc session_interface.SessionUsecase, secret string, expiry time.Duration) *SessionController {
	return &SessionController{
		SessionUsecase: uc,
		TokenSecret:    secret,
		TokenExpiry:    expiry,
	}
}

// CreateSession POST /session
func (c *SessionController) CreateSession(ctx *gin.Context) {
	state, err := c.SessionUsecase.CreateSession(ctx.Request.Context())
	if err != nil {
		controller.DomainErrorResponse(ctx, err)
		return
	}

	token, err := tokenutil.CreateSessionToken(state.ID, c.TokenSecret, c.TokenExpiry, time.Now())
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"code":       "SUCCESS",
		"session_id": state.ID,
		"token":      token,
		"session":    NewSessionView(state),
	})
}

func (c *SessionController) GetSession(ctx *gin.Context) {
	state, err := c.SessionUsecase.GetSession(ctx.Request.Context(), sessionID(ctx))
	respondState(ctx, state, err)
}

func (c *SessionController) DeleteSession(ctx *gin.Context) {
	if err := c.SessionUsecase.DeleteSession(ctx.Request.Context(), sessionID(ctx)); err != nil {
		controller.DomainErrorResponse(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// AnswerQuestion PUT /session/answers/:index {"answer": "Gold"} 或 {"answer": ["Classic & Timeless"]}
func (c *SessionController) AnswerQuestion(ctx *gin.Context) {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_QUESTION_INDEX", "index参数必须是数字")
		return
	}

	var req struct {
		Answer catalog_models.SurveyAnswer `json:"answer"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMETERS", "answer格式错误: "+err.Error())
		return
	}

	state, err := c.SessionUsecase.AnswerQuestion(ctx.Request.Context(), sessionID(ctx), index, req.Answer)
	respondState(ctx, state, err)
}

func (c *SessionController) FinishSurvey(ctx *gin.Context) {
	state, err := c.SessionUsecase.FinishSurvey(ctx.Request.Context(), sessionID(ctx))
	respondState(ctx, state, err)
}

func (c *SessionController) SelectCelebrity(ctx *gin.Context) {
	var req struct {
		CelebrityID int `json:"celebrity_id" binding:"required,min=1"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMETERS", "缺少必要参数: celebrity_id")
		return
	}

	state, err := c.SessionUsecase.SelectCelebrity(ctx.Request.Context(), sessionID(ctx), req.CelebrityID)
	respondState(ctx, state, err)
}

func (c *SessionController) SelectCategory(ctx *gin.Context) {
	var req struct {
		Category string `json:"category" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMETERS", "缺少必要参数: category")
		return
	}

	state, err := c.SessionUsecase.SelectCategory(ctx.Request.Context(), sessionID(ctx), req.Category)
	respondState(ctx, state, err)
}

func (c *SessionController) ViewAllProducts(ctx *gin.Context) {
	state, err := c.SessionUsecase.ViewAllProducts(ctx.Request.Context(), sessionID(ctx))
	respondState(ctx, state, err)
}

func (c *SessionController) SelectProduct(ctx *gin.Context) {
	var req struct {
		ProductID int `json:"product_id" binding:"required,min=1"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMETERS", "缺少必要参数: product_id")
		return
	}

	state, err := c.SessionUsecase.SelectProduct(ctx.Request.Context(), sessionID(ctx), req.ProductID)
	respondState(ctx, state, err)
}

// GetSessionProducts GET /session/products?sort=price-low-high
func (c *SessionController) GetSessionProducts(ctx *gin.Context) {
	products, err := c.SessionUsecase.SessionProducts(ctx.Request.Context(), sessionID(ctx), ctx.Query("sort"))
	if err != nil {
		controller.DomainErrorResponse(ctx, err)
		return
	}
	controller.SuccessResponse(ctx, "products", controller_catalog.NewProductViews(products), len(products))
}

func (c *SessionController) AddToCart(ctx *gin.Context) {
	var req struct {
		ProductID int `json:"product_id" binding:"required,min=1"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMETERS", "缺少必要参数: product_id")
		return
	}

	state, err := c.SessionUsecase.AddToCart(ctx.Request.Context(), sessionID(ctx), req.ProductID)
	respondState(ctx, state, err)
}

// UpdateCartQuantity PUT /session/cart/:product_id {"quantity": 2}，数量<=0 时移除
func (c *SessionController) UpdateCartQuantity(ctx *gin.Context) {
	productID, ok := productIDParam(ctx)
	if !ok {
		return
	}

	var req struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMETERS", "缺少必要参数: quantity")
		return
	}

	state, err := c.SessionUsecase.UpdateCartQuantity(ctx.Request.Context(), sessionID(ctx), productID, *req.Quantity)
	respondState(ctx, state, err)
}

func (c *SessionController) RemoveFromCart(ctx *gin.Context) {
	productID, ok := productIDParam(ctx)
	if !ok {
		return
	}

	state, err := c.SessionUsecase.RemoveFromCart(ctx.Request.Context(), sessionID(ctx), productID)
	respondState(ctx, state, err)
}

func (c *SessionController) ToggleCart(ctx *gin.Context) {
	state, err := c.SessionUsecase.ToggleCart(ctx.Request.Context(), sessionID(ctx))
	respondState(ctx, state, err)
}

func (c *SessionController) AddToWishlist(ctx *gin.Context) {
	var req struct {
		ProductID int `json:"product_id" binding:"required,min=1"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMETERS", "缺少必要参数: product_id")
		return
	}

	state, err := c.SessionUsecase.AddToWishlist(ctx.Request.Context(), sessionID(ctx), req.ProductID)
	respondState(ctx, state, err)
}

func (c *SessionController) RemoveFromWishlist(ctx *gin.Context) {
	productID, ok := productIDParam(ctx)
	if !ok {
		return
	}

	state, err := c.SessionUsecase.RemoveFromWishlist(ctx.Request.Context(), sessionID(ctx), productID)
	respondState(ctx, state, err)
}

func (c *SessionController) ToggleWishlist(ctx *gin.Context) {
	state, err := c.SessionUsecase.ToggleWishlist(ctx.Request.Context(), sessionID(ctx))
	respondState(ctx, state, err)
}

func (c *SessionController) Reset(ctx *gin.Context) {
	state, err := c.SessionUsecase.Reset(ctx.Request.Context(), sessionID(ctx))
	respondState(ctx, state, err)
}

func sessionID(ctx *gin.Context) string {
	return ctx.GetString(middleware.ContextKeySessionID)
}

func productIDParam(ctx *gin.Context) (int, bool) {
	id, err := strconv.Atoi(ctx.Param("product_id"))
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ID", "product_id参数必须是数字")
		return 0, false
	}
	return id, true
}

func respondState(ctx *gin.Context, state *session_models.AppState, err error) {
	if err != nil {
		controller.DomainErrorResponse(ctx, err)
		return
	}
	controller.SuccessResponse(ctx, "session", NewSessionView(state), 1)
}
