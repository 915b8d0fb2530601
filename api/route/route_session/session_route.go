package route_session

import (
	"time"

	"github.com/Super-Badmen-Viper/VibeJewel/api/controller/controller_session"
	"github.com/Super-Badmen-Viper/VibeJewel/api/middleware"
	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_catalog/catalog_interface"
	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_session/session_interface"
	"github.com/Super-Badmen-Viper/VibeJewel/usecase/usecase_session"
	"github.com/gin-gonic/gin"
)

// SessionRouterConfig 会话令牌参数
type SessionRouterConfig struct {
	TokenSecret string
	TokenExpiry time.Duration
}

func NewSessionRouter(
	timeout time.Duration,
	cfg SessionRouterConfig,
	repoSession session_interface.SessionRepository,
	repoCatalog catalog_interface.CatalogRepository,
	group *gin.RouterGroup,
) {
	uc := usecase_session.NewSessionUsecase(repoSession, repoCatalog, timeout)
	ctrl := controller_session.NewSessionController(uc, cfg.TokenSecret, cfg.TokenExpiry)

	group.POST("/session", ctrl.CreateSession)

	sessionGroup := group.Group("/session", middleware.SessionAuth(cfg.TokenSecret))
	{
		sessionGroup.GET("", ctrl.GetSession)
		sessionGroup.DELETE("", ctrl.DeleteSession)
		sessionGroup.POST("/reset", ctrl.Reset)

		sessionGroup.PUT("/answers/:index", ctrl.AnswerQuestion)
		sessionGroup.POST("/survey/finish", ctrl.FinishSurvey)

		sessionGroup.PUT("/selection/celebrity", ctrl.SelectCelebrity)
		sessionGroup.PUT("/selection/category", ctrl.SelectCategory)
		sessionGroup.DELETE("/selection/category", ctrl.ViewAllProducts)
		sessionGroup.PUT("/selection/product", ctrl.SelectProduct)
		sessionGroup.GET("/products", ctrl.GetSessionProducts)

		sessionGroup.POST("/cart", ctrl.AddToCart)
		sessionGroup.PUT("/cart/:product_id", ctrl.UpdateCartQuantity)
		sessionGroup.DELETE("/cart/:product_id", ctrl.RemoveFromCart)
		sessionGroup.POST("/cart/toggle", ctrl.ToggleCart)

		sessionGroup.POST("/wishlist", ctrl.AddToWishlist)
		sessionGroup.DELETE("/wishlist/:product_id", ctrl.RemoveFromWishlist)
		sessionGroup.POST("/wishlist/toggle", ctrl.ToggleWishlist)
	}
}
