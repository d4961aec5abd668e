package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store persists wizard sessions between requests. A session survives an
// abandoned tab so reopening the wizard can resume captured progress.
//
//go:generate mockgen -source=wizard_store.go -destination=../mock/wizard/wizard_store_mock.go -package=mock
type Store interface {
	Load(ctx context.Context, userID, bundleID string) (*Session, error)
	Save(ctx context.Context, session *Session) error
	Delete(ctx context.Context, userID, bundleID string) error
}

const (
	sessionKeyPrefix = "wizard:session:"
	sessionTTL       = 24 * time.Hour
)

type redisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) Store {
	return &redisStore{rdb: rdb}
}

func sessionKey(userID, bundleID string) string {
	return sessionKeyPrefix + userID + ":" + bundleID
}

func (s *redisStore) Load(ctx context.Context, userID, bundleID string) (*Session, error) {
	raw, err := s.rdb.Get(ctx, sessionKey(userID, bundleID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	var session Session
	if err := json.Unmarshal(raw, &session); err != nil {
		// Corrupt sessions are unrecoverable; treat as absent.
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

func (s *redisStore) Save(ctx context.Context, session *Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, sessionKey(session.UserID, session.BundleID), raw, sessionTTL).Err()
}

func (s *redisStore) Delete(ctx context.Context, userID, bundleID string) error {
	return s.rdb.Del(ctx, sessionKey(userID, bundleID)).Err()
}
