package session_models

import (
	"slices"
	"time"

	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_catalog/catalog_models"
)

// AppState 单个会话的应用状态，所有修改都通过下列命令方法完成
type AppState struct {
	ID string `json:"session_id"`

	// 问卷
	Answers catalog_models.SurveyAnswers `json:"answers"`

	// 当前选择
	SelectedCelebrity *catalog_models.Celebrity `json:"selected_celebrity"`
	SelectedCategory  string                    `json:"selected_category"` // 空表示查看全部
	SelectedProduct   *catalog_models.Product   `json:"selected_product"`

	Recommendations catalog_models.RecommendationResult `json:"recommendations"`

	Cart     []CartItem               `json:"cart"`
	Wishlist []catalog_models.Product `json:"wishlist"`

	// 弹窗状态
	ShowCart     bool `json:"show_cart"`
	ShowWishlist bool `json:"show_wishlist"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewAppState(id string, now time.Time) *AppState {
	s := &AppState{ID: id, CreatedAt: now, UpdatedAt: now}
	s.Reset()
	return s
}

// AnswerQuestion 记录某一题的答案，覆盖已有答案
func (s *AppState) AnswerQuestion(index int, answer catalog_models.SurveyAnswer) {
	if s.Answers == nil {
		s.Answers = make(catalog_models.SurveyAnswers)
	}
	s.Answers[index] = answer
}

// FinishSurvey 保存推荐结果
func (s *AppState) FinishSurvey(result catalog_models.RecommendationResult) {
	s.Recommendations = result
}

func (s *AppState) SelectCelebrity(celebrity catalog_models.Celebrity) {
	s.SelectedCelebrity = &celebrity
}

func (s *AppState) SelectCategory(category string) {
	s.SelectedCategory = category
}

// ViewAllProducts 清除类别选择
func (s *AppState) ViewAllProducts() {
	s.SelectedCategory = ""
}

func (s *AppState) SelectProduct(product catalog_models.Product) {
	s.SelectedProduct = &product
}

// AddToCart 已在购物车中的商品数量加一，否则以数量1加入
func (s *AppState) AddToCart(product catalog_models.Product) {
	for i := range s.Cart {
		if s.Cart[i].ID == product.ID {
			s.Cart[i].Quantity++
			return
		}
	}
	s.Cart = append(s.Cart, CartItem{Product: product, Quantity: 1})
}

func (s *AppState) RemoveFromCart(productID int) {
	s.Cart = slices.DeleteFunc(s.Cart, func(item CartItem) bool {
		return item.ID == productID
	})
}

// UpdateCartQuantity 数量小于等于0时移除该商品
func (s *AppState) UpdateCartQuantity(productID, quantity int) {
	if quantity <= 0 {
		s.RemoveFromCart(productID)
		return
	}
	for i := range s.Cart {
		if s.Cart[i].ID == productID {
			s.Cart[i].Quantity = quantity
		}
	}
}

// AddToWishlist 已收藏的商品不重复加入
func (s *AppState) AddToWishlist(product catalog_models.Product) {
	if s.InWishlist(product.ID) {
		return
	}
	s.Wishlist = append(s.Wishlist, product)
}

func (s *AppState) RemoveFromWishlist(productID int) {
	s.Wishlist = slices.DeleteFunc(s.Wishlist, func(p catalog_models.Product) bool {
		return p.ID == productID
	})
}

func (s *AppState) InWishlist(productID int) bool {
	return slices.ContainsFunc(s.Wishlist, func(p catalog_models.Product) bool {
		return p.ID == productID
	})
}

func (s *AppState) ToggleCart()     { s.ShowCart = !s.ShowCart }
func (s *AppState) ToggleWishlist() { s.ShowWishlist = !s.ShowWishlist }

// CartCount 购物车商品总件数
func (s *AppState) CartCount() int {
	total := 0
	for _, item := range s.Cart {
		total += item.Quantity
	}
	return total
}

// CartTotal 购物车总价
func (s *AppState) CartTotal() int {
	total := 0
	for _, item := range s.Cart {
		total += item.Price * item.Quantity
	}
	return total
}

// Reset 恢复初始状态，保留会话ID与创建时间
func (s *AppState) Reset() {
	s.Answers = make(catalog_models.SurveyAnswers)
	s.SelectedCelebrity = nil
	s.SelectedCategory = ""
	s.SelectedProduct = nil
	s.Recommendations = catalog_models.RecommendationResult{
		Celebrities: []catalog_models.Celebrity{},
		Products:    []catalog_models.Product{},
	}
	s.Cart = []CartItem{}
	s.Wishlist = []catalog_models.Product{}
	s.ShowCart = false
	s.ShowWishlist = false
}

// Clone 深拷贝，仓储存取时使用，避免不同请求共享切片
func (s *AppState) Clone() *AppState {
	if s == nil {
		return nil
	}
	out := *s
	out.Answers = s.Answers.Clone()
	if s.SelectedCelebrity != nil {
		c := *s.SelectedCelebrity
		out.SelectedCelebrity = &c
	}
	if s.SelectedProduct != nil {
		p := *s.SelectedProduct
		out.SelectedProduct = &p
	}
	out.Recommendations.Celebrities = slices.Clone(s.Recommendations.Celebrities)
	out.Recommendations.Products = slices.Clone(s.Recommendations.Products)
	out.Cart = slices.Clone(s.Cart)
	out.Wishlist = slices.Clone(s.Wishlist)
	return &out
}
