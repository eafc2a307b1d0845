package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"flightly/models"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "assistant:session:"

// RedisSessionStore keeps each session as JSON under its own key with a TTL
// that is refreshed on every write.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func (s *RedisSessionStore) Get(ctx context.Context, id string) (*models.AssistantSession, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", id, err)
	}
	var session models.AssistantSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", id, err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Set(ctx context.Context, session *models.AssistantSession) error {
	b, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", session.ID, err)
	}
	return s.client.Set(ctx, sessionKey(session.ID), b, s.ttl).Err()
}

func (s *RedisSessionStore) Clear(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKey(id)).Err()
}

// MemorySessionStore is the in-process store used when Redis is not configured.
// Sessions are never evicted.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]models.AssistantSession
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]models.AssistantSession)}
}

func (s *MemorySessionStore) Get(_ context.Context, id string) (*models.AssistantSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	session.Draft = session.Draft.Clone()
	return &session, nil
}

func (s *MemorySessionStore) Set(_ context.Context, session *models.AssistantSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *session
	stored.Draft = session.Draft.Clone()
	s.sessions[session.ID] = stored
	return nil
}

func (s *MemorySessionStore) Clear(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}
