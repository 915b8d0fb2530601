package repository_session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Super-Badmen-Viper/VibeJewel/domain"
	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_session/session_interface"
	"github.com/Super-Badmen-Viper/VibeJewel/domain/domain_session/session_models"
	"github.com/Super-Badmen-Viper/VibeJewel/util/metrics"
	"github.com/google/uuid"
)

// sessionMemoryRepository 进程内会话存储，存取时深拷贝
// ttl > 0 时，UpdatedAt 超过 ttl 未刷新的会话视为不存在并被清除
type sessionMemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]*session_models.AppState
	ttl      time.Duration
	now      func() time.Time
}

func NewSessionMemoryRepository(ttl time.Duration) session_interface.SessionRepository {
	return &sessionMemoryRepository{
		sessions: make(map[string]*session_models.AppState),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (r *sessionMemoryRepository) expired(state *session_models.AppState, now time.Time) bool {
	return r.ttl > 0 && !now.Before(state.UpdatedAt.Add(r.ttl))
}

// sweepLocked 清除全部过期会话，调用方需持有写锁
func (r *sessionMemoryRepository) sweepLocked(now time.Time) {
	if r.ttl <= 0 {
		return
	}
	for id, state := range r.sessions {
		if r.expired(state, now) {
			delete(r.sessions, id)
		}
	}
}

// lookupLocked 返回未过期的会话，过期会话顺带删除，调用方需持有写锁
func (r *sessionMemoryRepository) lookupLocked(id string) (*session_models.AppState, error) {
	state, ok := r.sessions[id]
	if ok && r.expired(state, r.now()) {
		delete(r.sessions, id)
		metrics.SessionsActive.Set(float64(len(r.sessions)))
		ok = false
	}
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, domain.ErrSessionNotFound)
	}
	return state, nil
}

func (r *sessionMemoryRepository) Create(ctx context.Context) (*session_models.AppState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := r.now()
	state := session_models.NewAppState(uuid.NewString(), now)

	r.mu.Lock()
	r.sweepLocked(now)
	r.sessions[state.ID] = state.Clone()
	metrics.SessionsActive.Set(float64(len(r.sessions)))
	r.mu.Unlock()

	return state, nil
}

func (r *sessionMemoryRepository) Get(ctx context.Context, id string) (*session_models.AppState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	state, err := r.lookupLocked(id)
	if err != nil {
		return nil, err
	}
	return state.Clone(), nil
}

// Update 在写锁内对会话副本执行 fn，fn 返回错误时不保存
func (r *sessionMemoryRepository) Update(
	ctx context.Context,
	id string,
	fn func(state *session_models.AppState) error,
) (*session_models.AppState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.lookupLocked(id)
	if err != nil {
		return nil, err
	}

	state := current.Clone()
	if err := fn(state); err != nil {
		return nil, err
	}
	state.ID = id
	state.UpdatedAt = r.now()
	r.sessions[id] = state
	return state.Clone(), nil
}

func (r *sessionMemoryRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.lookupLocked(id); err != nil {
		return err
	}
	delete(r.sessions, id)
	metrics.SessionsActive.Set(float64(len(r.sessions)))
	return nil
}
