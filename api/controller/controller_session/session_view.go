package controller_session

import (
	"time"

	"github.com/Super-Badmen-Viper/VibeJewel/api/controller/controller_catalog"
	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_catalog/catalog_models"
	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_session/session_models"
	"github.com/Super-Badmen-Viper/VibeJewel/usecase/usecase_catalog"
)

type CartItemView struct {
	controller_catalog.ProductView
	Quantity int `json:"quantity"`
}

// SessionView 会话响应，附带购物车汇总
type SessionView struct {
	ID                string                                `json:"session_id"`
	Answers           catalog_models.SurveyAnswers          `json:"answers"`
	SelectedCelebrity *catalog_models.Celebrity             `json:"selected_celebrity"`
	SelectedCategory  string                                `json:"selected_category"`
	SelectedProduct   *controller_catalog.ProductView       `json:"selected_product"`
	Recommendations   controller_catalog.RecommendationView `json:"recommendations"`
	Cart              []CartItemView                        `json:"cart"`
	CartCount         int                                   `json:"cart_count"`
	CartTotal         int                                   `json:"cart_total"`
	CartTotalDisplay  string                                `json:"cart_total_display"`
	Wishlist          []controller_catalog.ProductView      `json:"wishlist"`
	ShowCart          bool                                  `json:"show_cart"`
	ShowWishlist      bool                                  `json:"show_wishlist"`
	CreatedAt         time.Time                             `json:"created_at"`
	UpdatedAt         time.Time                             `json:"updated_at"`
}

func NewSessionView(s *session_models.AppState) SessionView {
	view := SessionView{
		ID:                s.ID,
		Answers:           s.Answers,
		SelectedCelebrity: s.SelectedCelebrity,
		SelectedCategory:  s.SelectedCategory,
		Recommendations:   controller_catalog.NewRecommendationView(s.Recommendations),
		Cart:              make([]CartItemView, 0, len(s.Cart)),
		CartCount:         s.CartCount(),
		CartTotal:         s.CartTotal(),
		CartTotalDisplay:  usecase_catalog.FormatPrice(s.CartTotal()),
		Wishlist:          controller_catalog.NewProductViews(s.Wishlist),
		ShowCart:          s.ShowCart,
		ShowWishlist:      s.ShowWishlist,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
	if s.SelectedProduct != nil {
		p := controller_catalog.NewProductView(*s.SelectedProduct)
		view.SelectedProduct = &p
	}
	for _, item := range s.Cart {
		view.Cart = append(view.Cart, CartItemView{
			ProductView: controller_catalog.NewProductView(item.Product),
			Quantity:    item.Quantity,
		})
	}
	return view
}
