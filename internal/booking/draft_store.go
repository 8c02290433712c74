package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// DraftStore persists in-progress form snapshots so a returning client can
// pick up a half-filled form. Drafts are pre-submission state with a TTL;
// submitted requests are never stored.
type DraftStore interface {
	Save(ctx context.Context, sessionID string, req Request) error
	Load(ctx context.Context, sessionID string, kind Kind) (Request, error)
	Delete(ctx context.Context, sessionID string, kind Kind) error
}

// RedisDraftStore keeps drafts in redis with a TTL.
type RedisDraftStore struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewRedisDraftStore creates a redis-backed draft store. A non-positive ttl
// defaults to 24h.
func NewRedisDraftStore(redisClient *redis.Client, ttl time.Duration) *RedisDraftStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisDraftStore{redis: redisClient, ttl: ttl}
}

func (s *RedisDraftStore) key(sessionID string, kind Kind) string {
	return fmt.Sprintf("booking:draft:%s:%s", sessionID, kind)
}

// Save stores the draft, refreshing its TTL.
func (s *RedisDraftStore) Save(ctx context.Context, sessionID string, req Request) error {
	data, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("booking: marshal draft: %w", err)
	}
	if err := s.redis.Set(ctx, s.key(sessionID, req.Kind), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("booking: save draft: %w", err)
	}
	return nil
}

// Load retrieves a draft, returning ErrDraftNotFound when none exists.
func (s *RedisDraftStore) Load(ctx context.Context, sessionID string, kind Kind) (Request, error) {
	data, err := s.redis.Get(ctx, s.key(sessionID, kind)).Bytes()
	if err == redis.Nil {
		return Request{}, ErrDraftNotFound
	}
	if err != nil {
		return Request{}, fmt.Errorf("booking: load draft: %w", err)
	}
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return Request{}, fmt.Errorf("booking: unmarshal draft: %w", err)
	}
	return req, nil
}

// Delete removes a draft. Deleting a missing draft is not an error.
func (s *RedisDraftStore) Delete(ctx context.Context, sessionID string, kind Kind) error {
	if err := s.redis.Del(ctx, s.key(sessionID, kind)).Err(); err != nil {
		return fmt.Errorf("booking: delete draft: %w", err)
	}
	return nil
}

// MemoryDraftStore is an in-memory DraftStore for development and tests.
type MemoryDraftStore struct {
	mu     sync.RWMutex
	drafts map[string][]byte
}

// NewMemoryDraftStore creates an empty in-memory draft store.
func NewMemoryDraftStore() *MemoryDraftStore {
	return &MemoryDraftStore{drafts: make(map[string][]byte)}
}

func (s *MemoryDraftStore) key(sessionID string, kind Kind) string {
	return sessionID + ":" + string(kind)
}

// Save stores the draft in memory.
func (s *MemoryDraftStore) Save(ctx context.Context, sessionID string, req Request) error {
	data, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("booking: marshal draft: %w", err)
	}
	s.mu.Lock()
	s.drafts[s.key(sessionID, req.Kind)] = data
	s.mu.Unlock()
	return nil
}

// Load retrieves a draft from memory.
func (s *MemoryDraftStore) Load(ctx context.Context, sessionID string, kind Kind) (Request, error) {
	s.mu.RLock()
	data, ok := s.drafts[s.key(sessionID, kind)]
	s.mu.RUnlock()
	if !ok {
		return Request{}, ErrDraftNotFound
	}
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return Request{}, fmt.Errorf("booking: unmarshal draft: %w", err)
	}
	return req, nil
}

// Delete removes a draft from memory.
func (s *MemoryDraftStore) Delete(ctx context.Context, sessionID string, kind Kind) error {
	s.mu.Lock()
	delete(s.drafts, s.key(sessionID, kind))
	s.mu.Unlock()
	return nil
}

var (
	_ DraftStore = (*RedisDraftStore)(nil)
	_ DraftStore = (*MemoryDraftStore)(nil)
)
