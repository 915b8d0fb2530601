package session_interface

import (
	"context"

	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_catalog/catalog_models"
	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_session/session_models"
)

type SessionRepository interface {
	Create(ctx context.Context) (*session_models.AppState, error)
	Get(ctx context.Context, id string) (*session_models.AppState, error)
	// Update 原子地读取、修改并保存会话
	Update(ctx context.Context, id string, fn func(state *session_models.AppState) error) (*session_models.AppState, error)
	Delete(ctx context.Context, id string) error
}

// SessionUsecase 会话命令入口，每个方法返回修改后的状态
type SessionUsecase interface {
	CreateSession(ctx context.Context) (*session_models.AppState, error)
	GetSession(ctx context.Context, sessionID string) (*session_models.AppState, error)
	DeleteSession(ctx context.Context, sessionID string) error

	AnswerQuestion(ctx context.Context, sessionID string, index int, answer catalog_models.SurveyAnswer) (*session_models.AppState, error)
	FinishSurvey(ctx context.Context, sessionID string) (*session_models.AppState, error)

	SelectCelebrity(ctx context.Context, sessionID string, celebrityID int) (*session_models.AppState, error)
	SelectCategory(ctx context.Context, sessionID string, category string) (*session_models.AppState, error)
	ViewAllProducts(ctx context.Context, sessionID string) (*session_models.AppState, error)
	SelectProduct(ctx context.Context, sessionID string, productID int) (*session_models.AppState, error)
	SessionProducts(ctx context.Context, sessionID string, sort string) ([]catalog_models.Product, error)

	AddToCart(ctx context.Context, sessionID string, productID int) (*session_models.AppState, error)
	UpdateCartQuantity(ctx context.Context, sessionID string, productID, quantity int) (*session_models.AppState, error)
	RemoveFromCart(ctx context.Context, sessionID string, productID int) (*session_models.AppState, error)
	ToggleCart(ctx context.Context, sessionID string) (*session_models.AppState, error)

	AddToWishlist(ctx context.Context, sessionID string, productID int) (*session_models.AppState, error)
	RemoveFromWishlist(ctx context.Context, sessionID string, productID int) (*session_models.AppState, error)
	ToggleWishlist(ctx context.Context, sessionID string) (*session_models.AppState, error)

	Reset(ctx context.Context, sessionID string) (*session_models.AppState, error)
}
