package cart

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	persistKeyPrefix = "cart:state:"
	versionKeyPrefix = "cart:ver:"
	persistTTL       = 7 * 24 * time.Hour
)

// stateStore is the durable half of the manager: cart snapshots keyed by
// user, each save stamped with a fresh version so other processes can spot
// writes they did not make.
type stateStore interface {
	Load(ctx context.Context, userID string) (snap Snapshot, version string, ok bool)
	Save(userID string, snap Snapshot) (version string)
	Version(ctx context.Context, userID string) string
}

// Manager hands out one Store per user and keeps cart+promo state in redis
// so a returning shopper finds their cart intact. Cached stores are
// revalidated against the persisted version on every access; when another
// process rewrote the cart (the checkout consumer clearing it after
// CHECKOUT_COMPLETED) the cached store is re-synced from redis.
type Manager struct {
	state  stateStore
	logger *zap.Logger

	mu       sync.Mutex
	stores   map[string]*Store
	versions map[string]string
}

func NewManager(rdb *redis.Client, logger ...*zap.Logger) *Manager {
	l := zap.L().Named("cart.manager")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("cart.manager")
	}

	var state stateStore
	if rdb != nil {
		state = &redisStateStore{rdb: rdb, logger: l}
	}
	return newManagerWithState(state, l)
}

func newManagerWithState(state stateStore, logger *zap.Logger) *Manager {
	return &Manager{
		state:    state,
		logger:   logger,
		stores:   make(map[string]*Store),
		versions: make(map[string]string),
	}
}

// ForUser returns the user's cart store, loading persisted state on first
// access and re-syncing whenever the persisted version moved underneath the
// cache.
func (m *Manager) ForUser(ctx context.Context, userID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	store, cached := m.stores[userID]
	if !cached {
		store = NewStore()
		if m.state != nil {
			store.persist = func(snap Snapshot) {
				ver := m.state.Save(userID, snap)
				m.mu.Lock()
				m.versions[userID] = ver
				m.mu.Unlock()
			}
		}
		m.stores[userID] = store
	}
	if m.state == nil {
		return store
	}

	if cached && m.state.Version(ctx, userID) == m.versions[userID] {
		return store
	}
	if snap, ver, ok := m.state.Load(ctx, userID); ok {
		store.restore(snap)
		m.versions[userID] = ver
	}
	return store
}

type redisStateStore struct {
	rdb    *redis.Client
	logger *zap.Logger
}

func (r *redisStateStore) Version(ctx context.Context, userID string) string {
	ver, err := r.rdb.Get(ctx, versionKeyPrefix+userID).Result()
	if err != nil {
		return ""
	}
	return ver
}

func (r *redisStateStore) Load(ctx context.Context, userID string) (Snapshot, string, bool) {
	raw, err := r.rdb.Get(ctx, persistKeyPrefix+userID).Bytes()
	if err != nil {
		return Snapshot{}, "", false
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		r.logger.Warn("discarding corrupt persisted cart",
			zap.String("user_id", userID), zap.Error(err))
		return Snapshot{}, "", false
	}
	return snap, r.Version(ctx, userID), true
}

func (r *redisStateStore) Save(userID string, snap Snapshot) string {
	raw, err := json.Marshal(snap)
	if err != nil {
		r.logger.Warn("cart snapshot marshal failed", zap.Error(err))
		return ""
	}

	ver := uuid.NewString()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	pipe := r.rdb.TxPipeline()
	pipe.Set(ctx, persistKeyPrefix+userID, raw, persistTTL)
	pipe.Set(ctx, versionKeyPrefix+userID, ver, persistTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Warn("cart snapshot persist failed",
			zap.String("user_id", userID), zap.Error(err))
		return ""
	}
	return ver
}
