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

// maxTranscriptEntries caps the per-session log; extraction only ever looks
// at the tail of the conversation.
const maxTranscriptEntries = 20

// TranscriptLog records the turn-by-turn conversation for the active booking
// only. The log is cleared the moment a booking completes.
type TranscriptLog interface {
	Append(ctx context.Context, sessionID string, entry model.TranscriptEntry) error
	// Window returns the logged entries, oldest first.
	Window(ctx context.Context, sessionID string) ([]model.TranscriptEntry, error)
	Clear(ctx context.Context, sessionID string) error
}

// RedisTranscriptLog keeps the log as a capped Redis list sharing the session
// TTL.
type RedisTranscriptLogImpl struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisTranscriptLog(client *redis.Client, ttl time.Duration) TranscriptLog {
	return &RedisTranscriptLogImpl{client: client, ttl: ttl}
}

func (l *RedisTranscriptLogImpl) key(sessionID string) string {
	return fmt.Sprintf("session:%s:transcript", sessionID)
}

func (l *RedisTranscriptLogImpl) Append(ctx context.Context, sessionID string, entry model.TranscriptEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal transcript entry: %w", err)
	}

	key := l.key(sessionID)
	pipe := l.client.TxPipeline()
	pipe.RPush(ctx, key, data)
	pipe.LTrim(ctx, key, -maxTranscriptEntries, -1)
	pipe.Expire(ctx, key, l.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

func (l *RedisTranscriptLogImpl) Window(ctx context.Context, sessionID string) ([]model.TranscriptEntry, error) {
	raw, err := l.client.LRange(ctx, l.key(sessionID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]model.TranscriptEntry, 0, len(raw))
	for _, item := range raw {
		var entry model.TranscriptEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, fmt.Errorf("invalid transcript entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (l *RedisTranscriptLogImpl) Clear(ctx context.Context, sessionID string) error {
	return l.client.Del(ctx, l.key(sessionID)).Err()
}

// MemoryTranscriptLog is the single-process counterpart used by tests.
type MemoryTranscriptLogImpl struct {
	mu   sync.RWMutex
	logs map[string][]model.TranscriptEntry
}

func NewMemoryTranscriptLog() TranscriptLog {
	return &MemoryTranscriptLogImpl{logs: make(map[string][]model.TranscriptEntry)}
}

func (l *MemoryTranscriptLogImpl) Append(ctx context.Context, sessionID string, entry model.TranscriptEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := append(l.logs[sessionID], entry)
	if len(entries) > maxTranscriptEntries {
		entries = entries[len(entries)-maxTranscriptEntries:]
	}
	l.logs[sessionID] = entries
	return nil
}

func (l *MemoryTranscriptLogImpl) Window(ctx context.Context, sessionID string) ([]model.TranscriptEntry, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]model.TranscriptEntry, len(l.logs[sessionID]))
	copy(out, l.logs[sessionID])
	return out, nil
}

func (l *MemoryTranscriptLogImpl) Clear(ctx context.Context, sessionID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.logs, sessionID)
	return nil
}
