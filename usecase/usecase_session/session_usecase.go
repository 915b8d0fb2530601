package usecase_session

import (
	"context"
	"fmt"
	"time"

	"github.com/Super-Badmen-Viper/VibeJewel/domain"
	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_catalog/catalog_interface"
	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_catalog/catalog_models"
	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_session/session_interface"
	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_session/session_models"
	"github.com/Super-Badmen-Viper/VibeJewel/usecase/usecase_catalog"
	"github.com/Super-Badmen-Viper/VibeJewel/usecase/usecase_recommend"
)

type SessionUsecase struct {
	repoSession session_interface.SessionRepository
	repoCatalog catalog_interface.CatalogRepository
	timeout     time.Duration
}

func NewSessionUsecase(
	repoSession session_interface.SessionRepository,
	repoCatalog catalog_interface.CatalogRepository,
	timeout time.Duration,
) session_interface.SessionUsecase {
	return &SessionUsecase{
		repoSession: repoSession,
		repoCatalog: repoCatalog,
		timeout:     timeout,
	}
}

func (uc *SessionUsecase) CreateSession(ctx context.Context) (*session_models.AppState, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	state, err := uc.repoSession.Create(ctx)
	if err != nil {
		return nil, fmt.Errorf("创建会话失败: %w", err)
	}
	return state, nil
}

func (uc *SessionUsecase) GetSession(ctx context.Context, sessionID string) (*session_models.AppState, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.repoSession.Get(ctx, sessionID)
}

func (uc *SessionUsecase) DeleteSession(ctx context.Context, sessionID string) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.repoSession.Delete(ctx, sessionID)
}

// AnswerQuestion 题目下标必须落在问卷范围内，答案内容不做校验
func (uc *SessionUsecase) AnswerQuestion(
	ctx context.Context,
	sessionID string,
	index int,
	answer catalog_models.SurveyAnswer,
) (*session_models.AppState, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	questions, err := uc.repoCatalog.GetSurveyQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("获取问卷失败: %w", err)
	}
	if index < 0 || index >= len(questions) {
		return nil, fmt.Errorf("question index %d of %d: %w", index, len(questions), domain.ErrInvalidQuestionIndex)
	}

	return uc.repoSession.Update(ctx, sessionID, func(state *session_models.AppState) error {
		state.AnswerQuestion(index, answer)
		return nil
	})
}

// FinishSurvey 在会话写锁内按已保存的答案生成推荐
func (uc *SessionUsecase) FinishSurvey(ctx context.Context, sessionID string) (*session_models.AppState, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	catalog, err := uc.repoCatalog.GetCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("获取商品目录失败: %w", err)
	}

	return uc.repoSession.Update(ctx, sessionID, func(state *session_models.AppState) error {
		state.FinishSurvey(usecase_recommend.Evaluate(catalog, state.Answers))
		return nil
	})
}

func (uc *SessionUsecase) SelectCelebrity(ctx context.Context, sessionID string, celebrityID int) (*session_models.AppState, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	celebrity, err := uc.repoCatalog.GetCelebrityByID(ctx, celebrityID)
	if err != nil {
		return nil, err
	}

	return uc.repoSession.Update(ctx, sessionID, func(state *session_models.AppState) error {
		state.SelectCelebrity(*celebrity)
		return nil
	})
}

// SelectCategory 类别名不做校验，未知类别只会让商品网格为空
func (uc *SessionUsecase) SelectCategory(ctx context.Context, sessionID string, category string) (*session_models.AppState, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.repoSession.Update(ctx, sessionID, func(state *session_models.AppState) error {
		state.SelectCategory(category)
		return nil
	})
}

func (uc *SessionUsecase) ViewAllProducts(ctx context.Context, sessionID string) (*session_models.AppState, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.repoSession.Update(ctx, sessionID, func(state *session_models.AppState) error {
		state.ViewAllProducts()
		return nil
	})
}

func (uc *SessionUsecase) SelectProduct(ctx context.Context, sessionID string, productID int) (*session_models.AppState, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	product, err := uc.repoCatalog.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	return uc.repoSession.Update(ctx, sessionID, func(state *session_models.AppState) error {
		state.SelectProduct(*product)
		return nil
	})
}

// SessionProducts 商品网格：按会话当前选择的类别筛选后排序
func (uc *SessionUsecase) SessionProducts(ctx context.Context, sessionID string, sort string) ([]catalog_models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	state, err := uc.repoSession.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	products, err := uc.repoCatalog.GetProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("获取商品列表失败: %w", err)
	}

	return usecase_catalog.ApplyProductQuery(products, catalog_models.ProductQuery{
		Category: state.SelectedCategory,
		Sort:     sort,
	}), nil
}

func (uc *SessionUsecase) AddToCart(ctx context.Context, sessionID string, productID int) (*session_models.AppState, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	product, err := uc.repoCatalog.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	return uc.repoSession.Update(ctx, sessionID, func(state *session_models.AppState) error {
		state.AddToCart(*product)
		return nil
	})
}

func (uc *SessionUsecase) UpdateCartQuantity(ctx context.Context, sessionID string, productID, quantity int) (*session_models.AppState, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.repoSession.Update(ctx, sessionID, func(state *session_models.AppState) error {
		state.UpdateCartQuantity(productID, quantity)
		return nil
	})
}

func (uc *SessionUsecase) RemoveFromCart(ctx context.Context, sessionID string, productID int) (*session_models.AppState, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.repoSession.Update(ctx, sessionID, func(state *session_models.AppState) error {
		state.RemoveFromCart(productID)
		return nil
	})
}

func (uc *SessionUsecase) ToggleCart(ctx context.Context, sessionID string) (*session_models.AppState, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.repoSession.Update(ctx, sessionID, func(state *session_models.AppState) error {
		state.ToggleCart()
		return nil
	})
}

func (uc *SessionUsecase) AddToWishlist(ctx context.Context, sessionID string, productID int) (*session_models.AppState, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	product, err := uc.repoCatalog.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	return uc.repoSession.Update(ctx, sessionID, func(state *session_models.AppState) error {
		state.AddToWishlist(*product)
		return nil
	})
}

func (uc *SessionUsecase) RemoveFromWishlist(ctx context.Context, sessionID string, productID int) (*session_models.AppState, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.repoSession.Update(ctx, sessionID, func(state *session_models.AppState) error {
		state.RemoveFromWishlist(productID)
		return nil
	})
}

func (uc *SessionUsecase) ToggleWishlist(ctx context.Context, sessionID string) (*session_models.AppState, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.repoSession.Update(ctx, sessionID, func(state *session_models.AppState) error {
		state.ToggleWishlist()
		return nil
	})
}

func (uc *SessionUsecase) Reset(ctx context.Context, sessionID string) (*session_models.AppState, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.repoSession.Update(ctx, sessionID, func(state *session_models.AppState) error {
		state.Reset()
		return nil
	})
}
