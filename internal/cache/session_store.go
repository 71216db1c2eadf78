package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go-booking-assistant/internal/model"

	"github.com/redis/go-redis/v9"
)

// SessionStore holds one mutable dialog-state record per session id. Get on
// an unknown session returns a fresh initial state; access is isolated per
// session key.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*model.DialogState, error)
	Put(ctx context.Context, sessionID string, state *model.DialogState) error
	Clear(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps dialog state in Redis as JSON with a TTL refreshed
// on every write, so abandoned conversations expire instead of accumulating.
// It is the store to use when handlers run across multiple instances.
type RedisSessionStoreImpl struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) SessionStore {
	return &RedisSessionStoreImpl{client: client, ttl: ttl}
}

func (s *RedisSessionStoreImpl) key(sessionID string) string {
	return fmt.Sprintf("session:%s:state", sessionID)
}

func (s *RedisSessionStoreImpl) Get(ctx context.Context, sessionID string) (*model.DialogState, error) {
	data, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if err == redis.Nil {
		return model.NewDialogState(), nil
	}
	if err != nil {
		return nil, err
	}

	var state model.DialogState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("invalid session state: %w", err)
	}
	return &state, nil
}

func (s *RedisSessionStoreImpl) Put(ctx context.Context, sessionID string, state *model.DialogState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal session state: %w", err)
	}
	return s.client.Set(ctx, s.key(sessionID), data, s.ttl).Err()
}

func (s *RedisSessionStoreImpl) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, s.key(sessionID)).Err()
}

// MemorySessionStore is a single-process map guarded by a mutex. Correct only
// under a single-instance deployment; used by tests and database-less runs.
type MemorySessionStoreImpl struct {
	mu     sync.RWMutex
	states map[string]*model.DialogState
}

func NewMemorySessionStore() SessionStore {
	return &MemorySessionStoreImpl{states: make(map[string]*model.DialogState)}
}

func (s *MemorySessionStoreImpl) Get(ctx context.Context, sessionID string) (*model.DialogState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.states[sessionID]
	if !ok {
		return model.NewDialogState(), nil
	}
	copied := *state
	return &copied, nil
}

func (s *MemorySessionStoreImpl) Put(ctx context.Context, sessionID string, state *model.DialogState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *state
	s.states[sessionID] = &copied
	return nil
}

func (s *MemorySessionStoreImpl) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.states, sessionID)
	return nil
}
