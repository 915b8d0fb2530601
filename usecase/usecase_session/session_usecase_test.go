package usecase_session

import (
	"context"
	"testing"
	"time"

	"github.com/Super-Badmen-Viper/VibeJewel/domain"
	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_catalog/catalog_models"
	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_session/session_interface"
	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_session/session_models"
	"github.com/Super-Badmen-Viper/VibeJewel/repository/repository_catalog"
	"github.com/Super-Badmen-Viper/VibeJewel/repository/repository_session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUsecase() session_interface.SessionUsecase {
	catalogRepo := repository_catalog.NewCatalogStaticRepository(repository_catalog.BuiltinCatalog())
	return NewSessionUsecase(repository_session.NewSessionMemoryRepository(time.Hour), catalogRepo, time.Second)
}

// interleavingRepo 在第一次 Update 之前插入一次并发写入
type interleavingRepo struct {
	session_interface.SessionRepository
	before func(ctx context.Context, id string)
}

func (r *interleavingRepo) Update(
	ctx context.Context,
	id string,
	fn func(state *session_models.AppState) error,
) (*session_models.AppState, error) {
	if r.before != nil {
		before := r.before
		r.before = nil
		before(ctx, id)
	}
	return r.SessionRepository.Update(ctx, id, fn)
}

func TestSessionUsecase_SurveyFlow(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase()

	state, err := uc.CreateSession(ctx)
	require.NoError(t, err)

	_, err = uc.AnswerQuestion(ctx, state.ID, 1, catalog_models.MultipleAnswer("Classic & Timeless"))
	require.NoError(t, err)
	_, err = uc.AnswerQuestion(ctx, state.ID, 4, catalog_models.SingleAnswer(catalog_models.BudgetUnder50K))
	require.NoError(t, err)

	finished, err := uc.FinishSurvey(ctx, state.ID)
	require.NoError(t, err)

	require.Len(t, finished.Recommendations.Celebrities, 1)
	assert.Equal(t, "ZENDAYA", finished.Recommendations.Celebrities[0].Name)
	assert.False(t, finished.Recommendations.ProductFallback)
	require.Len(t, finished.Recommendations.Products, 2)
	assert.Equal(t, 3, finished.Recommendations.Products[0].ID)
	assert.Equal(t, 4, finished.Recommendations.Products[1].ID)
}

func TestSessionUsecase_FinishSurveyUsesAnswersStoredAtCommit(t *testing.T) {
	ctx := context.Background()
	catalogRepo := repository_catalog.NewCatalogStaticRepository(repository_catalog.BuiltinCatalog())
	repo := &interleavingRepo{SessionRepository: repository_session.NewSessionMemoryRepository(time.Hour)}
	uc := NewSessionUsecase(repo, catalogRepo, time.Second)

	state, err := repo.Create(ctx)
	require.NoError(t, err)
	_, err = repo.Update(ctx, state.ID, func(s *session_models.AppState) error {
		s.AnswerQuestion(catalog_models.QuestionIndexBudget, catalog_models.SingleAnswer(catalog_models.BudgetUnder50K))
		return nil
	})
	require.NoError(t, err)

	// 生成推荐前答案被另一个请求改写
	repo.before = func(ctx context.Context, id string) {
		_, err := repo.SessionRepository.Update(ctx, id, func(s *session_models.AppState) error {
			s.AnswerQuestion(catalog_models.QuestionIndexBudget, catalog_models.SingleAnswer(catalog_models.Budget500KAndAbove))
			return nil
		})
		require.NoError(t, err)
	}

	finished, err := uc.FinishSurvey(ctx, state.ID)
	require.NoError(t, err)

	budget, _ := finished.Answers[catalog_models.QuestionIndexBudget].Single()
	assert.Equal(t, catalog_models.Budget500KAndAbove, budget)
	require.Len(t, finished.Recommendations.Products, 1)
	assert.Equal(t, 2, finished.Recommendations.Products[0].ID)
}

func TestSessionUsecase_AnswerQuestionRejectsOutOfRangeIndex(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase()

	state, err := uc.CreateSession(ctx)
	require.NoError(t, err)

	for _, index := range []int{-1, 5} {
		_, err = uc.AnswerQuestion(ctx, state.ID, index, catalog_models.SingleAnswer("Gold"))
		assert.ErrorIs(t, err, domain.ErrInvalidQuestionIndex)
	}
}

func TestSessionUsecase_UnknownSession(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase()

	_, err := uc.GetSession(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = uc.FinishSurvey(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = uc.AddToCart(ctx, "missing", 1)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.ErrorIs(t, uc.DeleteSession(ctx, "missing"), domain.ErrSessionNotFound)
}

func TestSessionUsecase_CartAndWishlist(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase()

	state, err := uc.CreateSession(ctx)
	require.NoError(t, err)

	_, err = uc.AddToCart(ctx, state.ID, 1)
	require.NoError(t, err)
	_, err = uc.AddToCart(ctx, state.ID, 1)
	require.NoError(t, err)
	got, err := uc.AddToCart(ctx, state.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, got.CartCount())
	assert.Equal(t, 68963*2+45000, got.CartTotal())

	got, err = uc.UpdateCartQuantity(ctx, state.ID, 1, 0)
	require.NoError(t, err)
	require.Len(t, got.Cart, 1)
	assert.Equal(t, 4, got.Cart[0].ID)

	got, err = uc.RemoveFromCart(ctx, state.ID, 4)
	require.NoError(t, err)
	assert.Empty(t, got.Cart)

	_, err = uc.AddToCart(ctx, state.ID, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.AddToWishlist(ctx, state.ID, 2)
	require.NoError(t, err)
	got, err = uc.AddToWishlist(ctx, state.ID, 2)
	require.NoError(t, err)
	assert.Len(t, got.Wishlist, 1)

	got, err = uc.RemoveFromWishlist(ctx, state.ID, 2)
	require.NoError(t, err)
	assert.Empty(t, got.Wishlist)

	got, err = uc.ToggleCart(ctx, state.ID)
	require.NoError(t, err)
	assert.True(t, got.ShowCart)
	got, err = uc.ToggleWishlist(ctx, state.ID)
	require.NoError(t, err)
	assert.True(t, got.ShowWishlist)
}

func TestSessionUsecase_SelectionsAndSessionProducts(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase()

	state, err := uc.CreateSession(ctx)
	require.NoError(t, err)

	got, err := uc.SelectCelebrity(ctx, state.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, "BLAKE LIVELY", got.SelectedCelebrity.Name)

	_, err = uc.SelectCelebrity(ctx, state.ID, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.SelectCategory(ctx, state.ID, catalog_models.CategoryNecklaces)
	require.NoError(t, err)

	products, err := uc.SessionProducts(ctx, state.ID, "price-high-low")
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, []int{814282, 68963, 12500}, []int{products[0].Price, products[1].Price, products[2].Price})

	_, err = uc.ViewAllProducts(ctx, state.ID)
	require.NoError(t, err)
	products, err = uc.SessionProducts(ctx, state.ID, "")
	require.NoError(t, err)
	assert.Len(t, products, 4)

	got, err = uc.SelectProduct(ctx, state.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, "Serene Solitaire Necklace", got.SelectedProduct.Name)
}

func TestSessionUsecase_Reset(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase()

	state, err := uc.CreateSession(ctx)
	require.NoError(t, err)
	_, err = uc.AnswerQuestion(ctx, state.ID, 2, catalog_models.SingleAnswer("Gold"))
	require.NoError(t, err)
	_, err = uc.AddToCart(ctx, state.ID, 1)
	require.NoError(t, err)

	got, err := uc.Reset(ctx, state.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Answers)
	assert.Empty(t, got.Cart)
	assert.Equal(t, state.ID, got.ID)
}
